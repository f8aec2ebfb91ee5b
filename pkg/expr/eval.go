package expr

import "math"

const (
	// DivEpsilon is the smallest |denominator| Div will divide by.
	DivEpsilon = 1e-6
	// MixEpsilon is added to the Mix weight sum.
	MixEpsilon = 1e-6
)

// finite maps NaN and ±Inf to 0 so every composite node stays finite.
func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// Eval for VarNode returns the input selected by its axis.
func (v *VarNode) Eval(x, y, t float64) float64 {
	switch v.Axis {
	case AxisX:
		return x
	case AxisY:
		return y
	default:
		return t
	}
}

// Eval for ConstNode returns the constant value.
func (c *ConstNode) Eval(x, y, t float64) float64 {
	return c.Val
}

// Eval for UnaryNode dispatches on op.
func (u *UnaryNode) Eval(x, y, t float64) float64 {
	child := u.Child.Eval(x, y, t)

	switch u.Op {
	case OpSqrt:
		if child < 0 {
			return 0
		}
		return math.Sqrt(child)

	case OpSin:
		return finite(math.Sin(child))

	case OpCos:
		return finite(math.Cos(child))

	default:
		return 0
	}
}

// Eval for BinaryNode dispatches on op. The right operand is evaluated
// first because Mod and Div guard on it.
func (b *BinaryNode) Eval(x, y, t float64) float64 {
	right := b.Right.Eval(x, y, t)

	switch b.Op {
	case OpAdd, OpAverage:
		return finite((b.Left.Eval(x, y, t) + right) / 2)

	case OpMult:
		return finite(b.Left.Eval(x, y, t) * right)

	case OpMod:
		if right == 0 {
			return 0
		}
		return finite(math.Mod(b.Left.Eval(x, y, t), right))

	case OpDiv:
		if math.Abs(right) < DivEpsilon {
			return 0
		}
		return finite(b.Left.Eval(x, y, t) / right)

	default:
		return 0
	}
}

// Eval for MixNode computes the weighted blend of C and D.
func (m *MixNode) Eval(x, y, t float64) float64 {
	a := m.A.Eval(x, y, t)
	b := m.B.Eval(x, y, t)
	c := m.C.Eval(x, y, t)
	d := m.D.Eval(x, y, t)
	return finite((a*c + b*d) / (a + b + MixEpsilon))
}
