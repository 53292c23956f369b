package ast_test

import (
	"testing"

	"cvet/internal/ast"
	"cvet/internal/source"
)

func newTestTree() *ast.Tree {
	return ast.NewTree(source.Span{File: 0, Start: 0, End: 100}, 1, 10)
}

func TestTreeHasSingleRoot(t *testing.T) {
	tree := newTestTree()
	root := tree.Get(tree.Root())
	if root == nil || root.Kind != ast.KindProgram {
		t.Fatalf("root = %+v, want Program", root)
	}
	if root.Parent != ast.NoNodeID {
		t.Fatal("root has a parent")
	}
	if tree.Len() != 1 {
		t.Fatalf("fresh tree Len = %d, want 1", tree.Len())
	}
}

func TestAppendChildSetsBackReference(t *testing.T) {
	tree := newTestTree()
	fn := tree.NewNode(ast.KindFunctionDecl, source.Span{Start: 0, End: 50}, "main", 1, 5)
	tree.AppendChild(tree.Root(), fn)

	block := tree.NewNode(ast.KindBlock, source.Span{Start: 10, End: 50}, "", 1, 5)
	tree.AppendChild(fn, block)

	if got := tree.Get(fn).Parent; got != tree.Root() {
		t.Fatalf("fn.Parent = %v, want root", got)
	}
	if got := tree.Get(block).Parent; got != fn {
		t.Fatalf("block.Parent = %v, want %v", got, fn)
	}
	if children := tree.Get(tree.Root()).Children; len(children) != 1 || children[0] != fn {
		t.Fatalf("root children = %v", children)
	}
}

// Every non-root node must reach the root by following parents, without
// revisiting a node.
func TestTreeWellFormedness(t *testing.T) {
	tree := newTestTree()
	fn := tree.NewNode(ast.KindFunctionDecl, source.Span{}, "f", 1, 3)
	tree.AppendChild(tree.Root(), fn)
	block := tree.NewNode(ast.KindBlock, source.Span{}, "", 1, 3)
	tree.AppendChild(fn, block)
	ret := tree.NewNode(ast.KindReturnStmt, source.Span{}, "", 2, 2)
	tree.AppendChild(block, ret)

	for id := ast.NodeID(1); uint32(id) <= tree.Len(); id++ {
		seen := map[ast.NodeID]bool{}
		cur := id
		for cur != tree.Root() {
			if seen[cur] {
				t.Fatalf("cycle reaching root from node %v", id)
			}
			seen[cur] = true
			parent := tree.Get(cur).Parent
			if parent == ast.NoNodeID {
				t.Fatalf("node %v is detached from the root", id)
			}
			cur = parent
		}
	}
}

func TestWalkPreOrderAndPrune(t *testing.T) {
	tree := newTestTree()
	fn := tree.NewNode(ast.KindFunctionDecl, source.Span{}, "f", 1, 3)
	tree.AppendChild(tree.Root(), fn)
	errNode := tree.NewNode(ast.KindErrorNode, source.Span{}, "", 2, 2)
	tree.AppendChild(fn, errNode)
	inner := tree.NewNode(ast.KindIdentifier, source.Span{}, "x", 2, 2)
	tree.AppendChild(errNode, inner)

	var order []ast.NodeKind
	tree.Walk(tree.Root(), func(_ ast.NodeID, n *ast.Node) bool {
		order = append(order, n.Kind)
		return n.Kind != ast.KindErrorNode // prune below error nodes
	})

	want := []ast.NodeKind{ast.KindProgram, ast.KindFunctionDecl, ast.KindErrorNode}
	if len(order) != len(want) {
		t.Fatalf("visit order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visit order = %v, want %v", order, want)
		}
	}
}

func TestCoverLines(t *testing.T) {
	tree := newTestTree()
	id := tree.NewNode(ast.KindBlock, source.Span{}, "", 5, 5)
	tree.CoverLines(id, 3, 8)
	n := tree.Get(id)
	if n.StartLine != 3 || n.EndLine != 8 {
		t.Fatalf("line range = %d-%d, want 3-8", n.StartLine, n.EndLine)
	}
	tree.CoverLines(id, 4, 6) // contained range is a no-op
	if n.StartLine != 3 || n.EndLine != 8 {
		t.Fatalf("line range changed to %d-%d", n.StartLine, n.EndLine)
	}
}
