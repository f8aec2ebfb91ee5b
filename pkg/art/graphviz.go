package art

import (
	"fmt"
	"io"
	"strings"

	"github.com/wildfunctions/random_art/pkg/expr"
)

// Graphviz writes the three channel trees as a dot digraph, one cluster
// per channel. Node ids are unique across the whole graph.
func (c Channels) Graphviz(w io.Writer) error {
	var sb strings.Builder
	next := 0

	fmt.Fprintf(&sb, "digraph Channels {\n")
	for i, tree := range c.Trees() {
		name := Names[i]
		fmt.Fprintf(&sb, "   subgraph cluster_%s {\n", name)
		fmt.Fprintf(&sb, "      label=\"%s\";\n", name)

		out := next
		next++
		fmt.Fprintf(&sb, "      %d [label=\"%s\",shape=square,style=filled];\n", out, name)
		root := writeNode(&sb, tree, &next)
		fmt.Fprintf(&sb, "      %d -> %d;\n", root, out)

		fmt.Fprintf(&sb, "   }\n")
	}
	fmt.Fprintf(&sb, "}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeNode emits node and its subtree, returning the id given to node.
// Edges point from child to parent, the direction values flow.
func writeNode(sb *strings.Builder, node expr.Node, next *int) int {
	id := *next
	*next++

	var children []expr.Node
	switch n := node.(type) {
	case *expr.VarNode:
		fmt.Fprintf(sb, "      %d [label=\"%s\",shape=box,style=filled];\n", id, n.String())
	case *expr.ConstNode:
		fmt.Fprintf(sb, "      %d [label=\"%.2f\",shape=diamond,style=filled,color=\"#99aaff\"];\n", id, n.Val)
	case *expr.UnaryNode:
		fmt.Fprintf(sb, "      %d [label=\"%s\"];\n", id, opLabel(n.String()))
		children = []expr.Node{n.Child}
	case *expr.BinaryNode:
		fmt.Fprintf(sb, "      %d [label=\"%s\"];\n", id, opLabel(n.String()))
		children = []expr.Node{n.Left, n.Right}
	case *expr.MixNode:
		fmt.Fprintf(sb, "      %d [label=\"mix\"];\n", id)
		children = []expr.Node{n.A, n.B, n.C, n.D}
	}

	for _, child := range children {
		cid := writeNode(sb, child, next)
		fmt.Fprintf(sb, "      %d -> %d;\n", cid, id)
	}
	return id
}

// opLabel extracts the operator name from a canonical render like "add(x, y)".
func opLabel(rendered string) string {
	if i := strings.IndexByte(rendered, '('); i > 0 {
		return rendered[:i]
	}
	return rendered
}
