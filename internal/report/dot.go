package report

import (
	"fmt"
	"io"

	"cvet/internal/ast"
)

// WriteDOT emits the parse tree as Graphviz text. Leaves render as filled
// boxes, interior nodes as ellipses; rendering to an image stays outside
// this package.
func WriteDOT(w io.Writer, tree *ast.Tree) error {
	if tree == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, "digraph ParseTree {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=TB;"); err != nil {
		return err
	}

	if err := writeDOTNode(w, tree, tree.Root()); err != nil {
		return err
	}
	for edge := range TraverseTree(tree) {
		if err := writeDOTNode(w, tree, edge.Child); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  n%d -> n%d;\n", edge.Parent, edge.Child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func writeDOTNode(w io.Writer, tree *ast.Tree, id ast.NodeID) error {
	n := tree.Get(id)
	shape, fill := "ellipse", "lightgray"
	if len(n.Children) == 0 {
		shape, fill = "box", "lightblue"
	}
	_, err := fmt.Fprintf(w, "  n%d [label=%q, shape=%s, style=filled, fillcolor=%s];\n",
		id, dotLabel(n), shape, fill)
	return err
}

// dotLabel builds the raw label text; %q at the call site handles quote and
// newline escaping for DOT.
func dotLabel(n *ast.Node) string {
	if n.Text == "" {
		return n.Kind.String()
	}
	return n.Kind.String() + "\n" + n.Text
}
