package expr

// Fold replaces every subtree that does not read x, y or t with a single
// ConstNode holding the value that subtree evaluates to. Evaluation is
// pure, so the folded tree evaluates bit-identically to the original at
// every input. The original tree is left untouched.
func Fold(node Node) Node {
	switch n := node.(type) {
	case *VarNode, *ConstNode:
		return node.Clone()

	case *UnaryNode:
		folded := &UnaryNode{Op: n.Op, Child: Fold(n.Child)}
		return constify(folded, folded.Child)

	case *BinaryNode:
		folded := &BinaryNode{Op: n.Op, Left: Fold(n.Left), Right: Fold(n.Right)}
		return constify(folded, folded.Left, folded.Right)

	case *MixNode:
		folded := &MixNode{A: Fold(n.A), B: Fold(n.B), C: Fold(n.C), D: Fold(n.D)}
		return constify(folded, folded.A, folded.B, folded.C, folded.D)

	default:
		return node
	}
}

// constify collapses node to a constant when all of its (already folded)
// children are constants.
func constify(node Node, children ...Node) Node {
	for _, c := range children {
		if _, ok := c.(*ConstNode); !ok {
			return node
		}
	}
	return &ConstNode{Val: node.Eval(0, 0, 0)}
}

// Uses reports whether node reads the given axis anywhere.
func Uses(node Node, axis Axis) bool {
	switch n := node.(type) {
	case *VarNode:
		return n.Axis == axis
	case *ConstNode:
		return false
	case *UnaryNode:
		return Uses(n.Child, axis)
	case *BinaryNode:
		return Uses(n.Left, axis) || Uses(n.Right, axis)
	case *MixNode:
		return Uses(n.A, axis) || Uses(n.B, axis) || Uses(n.C, axis) || Uses(n.D, axis)
	default:
		return false
	}
}
