package token_test

import (
	"testing"

	"cvet/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func TestIsLiteral(t *testing.T) {
	literals := []token.Kind{token.IntLit, token.FloatLit, token.StringLit, token.CharLit}
	for _, k := range literals {
		if !tok(k).IsLiteral() {
			t.Errorf("IsLiteral(%v) = false, want true", k)
		}
	}

	nonLiterals := []token.Kind{token.Ident, token.KwInt, token.Plus, token.Semicolon, token.EOF, token.Comment}
	for _, k := range nonLiterals {
		if tok(k).IsLiteral() {
			t.Errorf("IsLiteral(%v) = true, want false", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	if !tok(token.KwAuto).IsKeyword() || !tok(token.KwWhile).IsKeyword() || !tok(token.KwSizeof).IsKeyword() {
		t.Error("keyword kinds not recognized as keywords")
	}
	if tok(token.Ident).IsKeyword() || tok(token.IntLit).IsKeyword() || tok(token.LParen).IsKeyword() {
		t.Error("non-keyword kinds recognized as keywords")
	}
}

func TestIsTypeKeyword(t *testing.T) {
	starters := []token.Kind{token.KwInt, token.KwChar, token.KwVoid, token.KwUnsigned, token.KwStruct, token.KwConst}
	for _, k := range starters {
		if !tok(k).IsTypeKeyword() {
			t.Errorf("IsTypeKeyword(%v) = false, want true", k)
		}
	}
	nonStarters := []token.Kind{token.KwIf, token.KwReturn, token.KwSizeof, token.Ident}
	for _, k := range nonStarters {
		if tok(k).IsTypeKeyword() {
			t.Errorf("IsTypeKeyword(%v) = true, want false", k)
		}
	}
}

func TestIsAssignOp(t *testing.T) {
	assigns := []token.Kind{token.Assign, token.PlusAssign, token.ShrAssign}
	for _, k := range assigns {
		if !tok(k).IsAssignOp() {
			t.Errorf("IsAssignOp(%v) = false, want true", k)
		}
	}
	if tok(token.EqEq).IsAssignOp() {
		t.Error("IsAssignOp(EqEq) = true, want false")
	}
}

func TestKindString(t *testing.T) {
	if got := token.KwInt.String(); got != "KwInt" {
		t.Errorf("KwInt.String() = %q", got)
	}
	if got := token.Kind(250).String(); got != "Unknown" {
		t.Errorf("unknown kind String() = %q", got)
	}
}
