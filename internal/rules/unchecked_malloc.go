package rules

import (
	"cvet/internal/ast"
)

var allocFuncs = map[string]bool{
	"malloc":  true,
	"calloc":  true,
	"realloc": true,
}

// uncheckedMallocRule finds allocator results that are used in a later
// statement of the same block with no NULL check in between. It walks
// whatever tree the parser produced and skips subtrees the parser marked as
// ErrorNode, so partially recovered files still get best-effort coverage.
type uncheckedMallocRule struct{}

func (*uncheckedMallocRule) ID() string      { return "unchecked-malloc" }
func (*uncheckedMallocRule) NeedsTree() bool { return true }

func (r *uncheckedMallocRule) Evaluate(in *Input) []Finding {
	if in.Tree == nil {
		return nil
	}
	var out []Finding
	tree := in.Tree
	tree.Walk(tree.Root(), func(id ast.NodeID, n *ast.Node) bool {
		if n.Kind == ast.KindErrorNode {
			return false
		}
		if n.Kind == ast.KindBlock || n.Kind == ast.KindProgram {
			out = append(out, r.checkBlock(tree, n.Children)...)
		}
		return true
	})
	return out
}

// checkBlock scans one statement list for allocator bindings and their
// unguarded uses.
func (r *uncheckedMallocRule) checkBlock(tree *ast.Tree, stmts []ast.NodeID) []Finding {
	var out []Finding
	for i, id := range stmts {
		name, line, ok := allocBinding(tree, id)
		if !ok {
			continue
		}
		for _, later := range stmts[i+1:] {
			if isNullGuard(tree, later, name) {
				break
			}
			if refersTo(tree, later, name) {
				out = append(out, Finding{
					RuleID:   "unchecked-malloc",
					Severity: SevWarning,
					Line:     line,
					Message:  "Result of allocation assigned to `" + name + "` is used without a NULL check.",
					Suggestion: "Check `" + name + "` against NULL before use, " +
						"e.g. `if (" + name + " == NULL) { ... }`. [CWE-690]",
				})
				break
			}
		}
	}
	return out
}

// allocBinding reports whether stmt binds an allocator result to a name:
// a declaration with an allocator initializer, or a plain assignment whose
// right side calls an allocator.
func allocBinding(tree *ast.Tree, stmt ast.NodeID) (string, uint32, bool) {
	n := tree.Get(stmt)
	switch n.Kind {
	case ast.KindVarDecl:
		if line, ok := findAllocCall(tree, stmt); ok {
			return n.Text, line, true
		}
	case ast.KindAssignment:
		if n.Text != "=" || len(n.Children) != 2 {
			return "", 0, false
		}
		lhs := tree.Get(n.Children[0])
		if lhs.Kind != ast.KindIdentifier {
			return "", 0, false
		}
		if line, ok := findAllocCall(tree, n.Children[1]); ok {
			return lhs.Text, line, true
		}
	}
	return "", 0, false
}

func findAllocCall(tree *ast.Tree, id ast.NodeID) (uint32, bool) {
	var line uint32
	found := false
	tree.Walk(id, func(_ ast.NodeID, n *ast.Node) bool {
		if n.Kind == ast.KindErrorNode {
			return false
		}
		if !found && n.Kind == ast.KindCallExpr && allocFuncs[n.Text] {
			line = n.StartLine
			found = true
		}
		return !found
	})
	return line, found
}

// isNullGuard reports whether stmt is an if statement whose condition
// mentions name. Any of the usual spellings (p == NULL, p != NULL, !p, p)
// reference the pointer, so condition membership is the test.
func isNullGuard(tree *ast.Tree, stmt ast.NodeID, name string) bool {
	n := tree.Get(stmt)
	if n.Kind != ast.KindIfStmt || n.Text == "switch" || len(n.Children) == 0 {
		return false
	}
	return refersTo(tree, n.Children[0], name)
}

// refersTo reports whether the subtree mentions name, skipping ErrorNode
// subtrees.
func refersTo(tree *ast.Tree, id ast.NodeID, name string) bool {
	found := false
	tree.Walk(id, func(_ ast.NodeID, n *ast.Node) bool {
		if n.Kind == ast.KindErrorNode {
			return false
		}
		if n.Kind == ast.KindIdentifier && n.Text == name {
			found = true
		}
		return !found
	})
	return found
}
