package report

import (
	"iter"

	"cvet/internal/ast"
)

// Edge is one parent-child link in the parse tree, labeled with the child's
// rendered node.
type Edge struct {
	Parent ast.NodeID
	Child  ast.NodeID
	Label  string
}

// TraverseTree returns a restartable depth-first enumeration of the tree's
// edges in document order. Renderers consume this instead of touching tree
// internals.
func TraverseTree(tree *ast.Tree) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if tree == nil {
			return
		}
		var walk func(id ast.NodeID) bool
		walk = func(id ast.NodeID) bool {
			n := tree.Get(id)
			for _, child := range n.Children {
				if !yield(Edge{Parent: id, Child: child, Label: NodeLabel(tree.Get(child))}) {
					return false
				}
				if !walk(child) {
					return false
				}
			}
			return true
		}
		walk(tree.Root())
	}
}

// NodeLabel renders a node for tree output: the kind name, plus the lexeme
// or name when the node carries one.
func NodeLabel(n *ast.Node) string {
	if n == nil {
		return ""
	}
	if n.Text == "" {
		return n.Kind.String()
	}
	return n.Kind.String() + " \"" + n.Text + "\""
}
