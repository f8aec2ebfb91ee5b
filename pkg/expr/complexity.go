package expr

func (v *VarNode) NodeCount() int { return 1 }
func (c *ConstNode) NodeCount() int { return 1 }
func (u *UnaryNode) NodeCount() int { return 1 + u.Child.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}
func (m *MixNode) NodeCount() int {
	return 1 + m.A.NodeCount() + m.B.NodeCount() + m.C.NodeCount() + m.D.NodeCount()
}

func (v *VarNode) Depth() int { return 1 }
func (c *ConstNode) Depth() int { return 1 }
func (u *UnaryNode) Depth() int { return 1 + u.Child.Depth() }
func (b *BinaryNode) Depth() int {
	return 1 + max(b.Left.Depth(), b.Right.Depth())
}
func (m *MixNode) Depth() int {
	return 1 + max(m.A.Depth(), m.B.Depth(), m.C.Depth(), m.D.Depth())
}

// IsTerminal reports whether node is a leaf (x, y, t or a constant).
func IsTerminal(node Node) bool {
	switch node.(type) {
	case *VarNode, *ConstNode:
		return true
	default:
		return false
	}
}

// WeightedComplexity estimates the per-pixel cost of evaluating node,
// with heavier weight for trig and the four-way mix.
func WeightedComplexity(node Node) float64 {
	switch n := node.(type) {
	case *VarNode, *ConstNode:
		return 1.0
	case *UnaryNode:
		return unaryWeight(n.Op) + WeightedComplexity(n.Child)
	case *BinaryNode:
		return binaryWeight(n.Op) + WeightedComplexity(n.Left) + WeightedComplexity(n.Right)
	case *MixNode:
		return 4.0 + WeightedComplexity(n.A) + WeightedComplexity(n.B) +
			WeightedComplexity(n.C) + WeightedComplexity(n.D)
	default:
		return 1.0
	}
}

func unaryWeight(op UnaryOp) float64 {
	switch op {
	case OpSin, OpCos:
		return 3.0
	case OpSqrt:
		return 2.0
	default:
		return 2.0
	}
}

func binaryWeight(op BinaryOp) float64 {
	switch op {
	case OpAdd, OpAverage:
		return 1.0
	case OpMult:
		return 1.5
	case OpDiv, OpMod:
		return 2.0
	default:
		return 1.5
	}
}
