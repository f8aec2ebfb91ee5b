package expr

import (
	"fmt"
	"strconv"
)

var axisNames = map[Axis]string{
	AxisX: "x",
	AxisY: "y",
	AxisT: "t",
}

var unaryOpNames = map[UnaryOp]string{
	OpSqrt: "sqrt",
	OpSin:  "sin",
	OpCos:  "cos",
}

var binaryOpNames = map[BinaryOp]string{
	OpAdd:     "add",
	OpMult:    "mult",
	OpMod:     "mod",
	OpDiv:     "div",
	OpAverage: "avg",
}

// formatNumber prints the shortest decimal that round-trips, never in
// exponent form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String methods

func (v *VarNode) String() string {
	return axisNames[v.Axis]
}

func (c *ConstNode) String() string {
	return formatNumber(c.Val)
}

func (u *UnaryNode) String() string {
	return fmt.Sprintf("%s(%s)", unaryOpNames[u.Op], u.Child.String())
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("%s(%s, %s)", binaryOpNames[b.Op], b.Left.String(), b.Right.String())
}

func (m *MixNode) String() string {
	return fmt.Sprintf("mix(%s, %s, %s, %s)",
		m.A.String(), m.B.String(), m.C.String(), m.D.String())
}

// LaTeX methods

func (v *VarNode) LaTeX() string {
	return axisNames[v.Axis]
}

func (c *ConstNode) LaTeX() string {
	return formatNumber(c.Val)
}

func (u *UnaryNode) LaTeX() string {
	child := u.Child.LaTeX()
	switch u.Op {
	case OpSqrt:
		return fmt.Sprintf("\\sqrt{%s}", child)
	case OpSin:
		return fmt.Sprintf("\\sin{(%s)}", child)
	case OpCos:
		return fmt.Sprintf("\\cos{(%s)}", child)
	default:
		return child
	}
}

func (b *BinaryNode) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpAdd:
		return fmt.Sprintf("\\frac{{%s} + {%s}}{2}", left, right)
	case OpMult:
		return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
	case OpMod:
		return fmt.Sprintf("{%s} \\bmod {%s}", left, right)
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", left, right)
	case OpAverage:
		return fmt.Sprintf("\\operatorname{avg}(%s, %s)", left, right)
	default:
		return ""
	}
}

func (m *MixNode) LaTeX() string {
	return fmt.Sprintf("\\operatorname{mix}(%s, %s, %s, %s)",
		m.A.LaTeX(), m.B.LaTeX(), m.C.LaTeX(), m.D.LaTeX())
}
