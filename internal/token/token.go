package token

import (
	"cvet/internal/source"
)

// Token represents a single source token with its location.
// Line and Col are 1-based and precomputed at scan time so a token stream
// stays positionally self-describing without the originating FileSet.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line uint32
	Col  uint32
}

// IsLiteral reports whether the token is a numeric, string, or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a C keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAuto && t.Kind <= KwWhile
}

// IsTypeKeyword reports whether the token can begin a declaration specifier.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case KwVoid, KwChar, KwShort, KwInt, KwLong, KwFloat, KwDouble,
		KwSigned, KwUnsigned, KwConst, KwVolatile, KwStatic, KwExtern,
		KwRegister, KwStruct, KwUnion, KwEnum:
		return true
	default:
		return false
	}
}

// IsAssignOp reports whether the token is '=' or a compound assignment.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		PercentAssign, AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
