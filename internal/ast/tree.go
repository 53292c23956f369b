package ast

import (
	"cvet/internal/source"
)

// Tree is a parse tree stored in a single arena. Exactly one root
// (KindProgram) exists from construction on, so the tree stays well-formed
// even when parsing produces nothing else.
type Tree struct {
	nodes *Arena[Node]
	root  NodeID
}

// NewTree creates a tree with a fresh Program root covering span.
func NewTree(span source.Span, startLine, endLine uint32) *Tree {
	t := &Tree{nodes: NewArena[Node](64)}
	t.root = NodeID(t.nodes.Allocate(Node{
		Kind:      KindProgram,
		Span:      span,
		StartLine: startLine,
		EndLine:   endLine,
	}))
	return t
}

// Root returns the Program node's ID.
func (t *Tree) Root() NodeID {
	return t.root
}

// Get returns the node for id, or nil for NoNodeID.
func (t *Tree) Get(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() uint32 {
	return t.nodes.Len()
}

// NewNode allocates a node without attaching it. Attach with AppendChild.
func (t *Tree) NewNode(kind NodeKind, span source.Span, text string, startLine, endLine uint32) NodeID {
	return NodeID(t.nodes.Allocate(Node{
		Kind:      kind,
		Span:      span,
		Text:      text,
		StartLine: startLine,
		EndLine:   endLine,
	}))
}

// AppendChild links child under parent and sets the back-reference.
func (t *Tree) AppendChild(parent, child NodeID) {
	p := t.Get(parent)
	c := t.Get(child)
	if p == nil || c == nil {
		return
	}
	p.Children = append(p.Children, child)
	c.Parent = parent
}

// CoverLines widens a node's line range to include [startLine, endLine].
func (t *Tree) CoverLines(id NodeID, startLine, endLine uint32) {
	n := t.Get(id)
	if n == nil {
		return
	}
	if n.StartLine == 0 || startLine < n.StartLine {
		n.StartLine = startLine
	}
	if endLine > n.EndLine {
		n.EndLine = endLine
	}
}

// Walk runs fn over the subtree rooted at id in depth-first pre-order.
// Returning false from fn prunes the subtree below the current node.
func (t *Tree) Walk(id NodeID, fn func(id NodeID, n *Node) bool) {
	n := t.Get(id)
	if n == nil {
		return
	}
	if !fn(id, n) {
		return
	}
	for _, child := range n.Children {
		t.Walk(child, fn)
	}
}
