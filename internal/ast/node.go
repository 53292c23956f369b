package ast

import (
	"cvet/internal/source"
)

// NodeKind tags a parse-tree node variant.
type NodeKind uint8

const (
	// KindProgram is the single root of every tree.
	KindProgram NodeKind = iota
	// KindFunctionDecl is a function definition.
	KindFunctionDecl
	// KindParamList groups a function's parameters.
	KindParamList
	// KindVarDecl is a variable declaration, local or global.
	KindVarDecl
	// KindBlock is a brace-delimited statement list.
	KindBlock
	// KindAssignment is an assignment statement.
	KindAssignment
	// KindIfStmt is an if/else statement.
	KindIfStmt
	// KindWhileStmt is a while loop.
	KindWhileStmt
	// KindForStmt is a for loop.
	KindForStmt
	// KindReturnStmt is a return statement.
	KindReturnStmt
	// KindExprStmt is an expression used as a statement.
	KindExprStmt
	// KindCallExpr is a function call.
	KindCallExpr
	// KindBinaryExpr is a binary operation.
	KindBinaryExpr
	// KindUnaryExpr is a prefix or postfix unary operation.
	KindUnaryExpr
	// KindIndexExpr is an array subscript.
	KindIndexExpr
	// KindLiteral is an integer, float, string, or char literal.
	KindLiteral
	// KindIdentifier is a name reference.
	KindIdentifier
	// KindErrorNode covers a span the parser could not resolve.
	KindErrorNode
)

var nodeKindNames = [...]string{
	KindProgram:      "Program",
	KindFunctionDecl: "FunctionDecl",
	KindParamList:    "ParamList",
	KindVarDecl:      "VarDecl",
	KindBlock:        "Block",
	KindAssignment:   "Assignment",
	KindIfStmt:       "IfStmt",
	KindWhileStmt:    "WhileStmt",
	KindForStmt:      "ForStmt",
	KindReturnStmt:   "ReturnStmt",
	KindExprStmt:     "ExprStmt",
	KindCallExpr:     "CallExpr",
	KindBinaryExpr:   "BinaryExpr",
	KindUnaryExpr:    "UnaryExpr",
	KindIndexExpr:    "IndexExpr",
	KindLiteral:      "Literal",
	KindIdentifier:   "Identifier",
	KindErrorNode:    "ErrorNode",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Node is a single parse-tree element. Children are owned (index list);
// Parent is a non-owning back-reference used only for traversal.
type Node struct {
	Kind NodeKind
	Span source.Span
	// Text carries the lexeme for leaves (identifiers, literals, operators
	// on Binary/Unary/Assignment nodes, function names on calls/decls).
	Text string
	// StartLine/EndLine are the 1-based source-line range covered by the
	// node, for diagnostics and UI cross-referencing.
	StartLine uint32
	EndLine   uint32
	Parent    NodeID
	Children  []NodeID
}
