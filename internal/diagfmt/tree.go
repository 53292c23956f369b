package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cvet/internal/ast"
	"cvet/internal/report"
)

// FormatTreePretty writes the parse tree as an indented outline, one node
// per line with its kind, text, and line extent.
func FormatTreePretty(w io.Writer, tree *ast.Tree) error {
	if tree == nil || tree.Len() == 0 {
		fmt.Fprintln(w, "<empty tree>")
		return nil
	}
	writeTreeNode(w, tree, tree.Root(), 0)
	return nil
}

func writeTreeNode(w io.Writer, tree *ast.Tree, id ast.NodeID, depth int) {
	n := tree.Get(id)
	fmt.Fprint(w, strings.Repeat("  ", depth))
	fmt.Fprint(w, n.Kind.String())
	if n.Text != "" {
		fmt.Fprintf(w, " %q", n.Text)
	}
	if n.StartLine != 0 {
		if n.EndLine > n.StartLine {
			fmt.Fprintf(w, " [lines %d-%d]", n.StartLine, n.EndLine)
		} else {
			fmt.Fprintf(w, " [line %d]", n.StartLine)
		}
	}
	fmt.Fprintln(w)
	for _, child := range n.Children {
		writeTreeNode(w, tree, child, depth+1)
	}
}

// TreeNodeJSON is one parse tree node in machine-readable form.
type TreeNodeJSON struct {
	Kind      string         `json:"kind"`
	Text      string         `json:"text,omitempty"`
	StartLine uint32         `json:"start_line,omitempty"`
	EndLine   uint32         `json:"end_line,omitempty"`
	Children  []TreeNodeJSON `json:"children,omitempty"`
}

// FormatTreeJSON writes the parse tree as a nested JSON document.
func FormatTreeJSON(w io.Writer, tree *ast.Tree) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if tree == nil || tree.Len() == 0 {
		return encoder.Encode(nil)
	}
	return encoder.Encode(buildTreeJSON(tree, tree.Root()))
}

func buildTreeJSON(tree *ast.Tree, id ast.NodeID) TreeNodeJSON {
	n := tree.Get(id)
	out := TreeNodeJSON{
		Kind:      n.Kind.String(),
		Text:      n.Text,
		StartLine: n.StartLine,
		EndLine:   n.EndLine,
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, buildTreeJSON(tree, child))
	}
	return out
}

// FormatTreeDOT writes the parse tree as a Graphviz document.
func FormatTreeDOT(w io.Writer, tree *ast.Tree) error {
	return report.WriteDOT(w, tree)
}
