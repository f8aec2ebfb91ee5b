package art

import (
	"fmt"

	"github.com/wildfunctions/random_art/pkg/expr"
)

// Channels holds one expression tree per color channel.
type Channels struct {
	R, G, B expr.Node
}

// Names of the channels in R, G, B order.
var Names = [3]string{"R", "G", "B"}

// Trees returns the channel trees in R, G, B order.
func (c Channels) Trees() [3]expr.Node {
	return [3]expr.Node{c.R, c.G, c.B}
}

// Clone returns a deep copy of the channel set.
func (c Channels) Clone() Channels {
	return Channels{
		R: c.R.Clone(),
		G: c.G.Clone(),
		B: c.B.Clone(),
	}
}

// Description returns the three-line human-readable form:
// "R: <tree>\nG: <tree>\nB: <tree>".
func (c Channels) Description() string {
	return fmt.Sprintf("R: %s\nG: %s\nB: %s", c.R.String(), c.G.String(), c.B.String())
}

// String is an alias for Description.
func (c Channels) String() string {
	return c.Description()
}

// LaTeX returns the channels as a LaTeX cases block.
func (c Channels) LaTeX() string {
	return fmt.Sprintf("\\begin{cases} R = %s \\\\ G = %s \\\\ B = %s \\end{cases}",
		c.R.LaTeX(), c.G.LaTeX(), c.B.LaTeX())
}

// Folded returns the channels with constant subtrees folded away. Pixel
// values are unchanged; only evaluation gets cheaper.
func (c Channels) Folded() Channels {
	return Channels{
		R: expr.Fold(c.R),
		G: expr.Fold(c.G),
		B: expr.Fold(c.B),
	}
}

// Complexity returns combined weighted complexity of all three trees.
func (c Channels) Complexity() float64 {
	return expr.WeightedComplexity(c.R) + expr.WeightedComplexity(c.G) + expr.WeightedComplexity(c.B)
}

// NodeCount returns the total node count of all three trees.
func (c Channels) NodeCount() int {
	return c.R.NodeCount() + c.G.NodeCount() + c.B.NodeCount()
}

// Depth returns the depth of the deepest channel tree.
func (c Channels) Depth() int {
	return max(c.R.Depth(), c.G.Depth(), c.B.Depth())
}

// UsesTime reports whether any channel reads t.
func (c Channels) UsesTime() bool {
	return expr.Uses(c.R, expr.AxisT) || expr.Uses(c.G, expr.AxisT) || expr.Uses(c.B, expr.AxisT)
}
