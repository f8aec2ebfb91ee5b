package expr

// Node is the interface for all expression tree nodes.
type Node interface {
	Eval(x, y, t float64) float64
	String() string
	LaTeX() string
	Clone() Node
	NodeCount() int
	Depth() int
}

// Axis identifies which evaluation input a VarNode reads.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisT
)

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpSqrt UnaryOp = iota
	OpSin
	OpCos
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota // averages its operands, same as OpAverage
	OpMult
	OpMod
	OpDiv
	OpAverage
)

// VarNode reads one of the inputs x, y or t.
type VarNode struct {
	Axis Axis
}

// ConstNode represents a numeric constant.
type ConstNode struct {
	Val float64
}

// UnaryNode applies a unary operation to a child expression.
type UnaryNode struct {
	Op    UnaryOp
	Child Node
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

// MixNode blends C and D weighted by A and B:
// (A*C + B*D) / (A + B + MixEpsilon).
type MixNode struct {
	A, B, C, D Node
}

// Convenience constructors, mostly for tests and hand-built trees.

func X() *VarNode { return &VarNode{Axis: AxisX} }
func Y() *VarNode { return &VarNode{Axis: AxisY} }
func T() *VarNode { return &VarNode{Axis: AxisT} }
func Number(v float64) *ConstNode { return &ConstNode{Val: v} }

func Unary(op UnaryOp, child Node) *UnaryNode {
	return &UnaryNode{Op: op, Child: child}
}

func Binary(op BinaryOp, left, right Node) *BinaryNode {
	return &BinaryNode{Op: op, Left: left, Right: right}
}

func Mix(a, b, c, d Node) *MixNode {
	return &MixNode{A: a, B: b, C: c, D: d}
}
