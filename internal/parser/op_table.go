package parser

import (
	"cvet/internal/token"
)

// binaryPrec returns the C precedence level for a binary operator token, or
// 0 when the token is not a binary operator. All levels here are
// left-associative; assignment is handled separately (right-associative,
// below every level in this table).
func binaryPrec(k token.Kind) int {
	switch k {
	case token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.Pipe:
		return 3
	case token.Caret:
		return 4
	case token.Amp:
		return 5
	case token.EqEq, token.BangEq:
		return 6
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return 7
	case token.Shl, token.Shr:
		return 8
	case token.Plus, token.Minus:
		return 9
	case token.Star, token.Slash, token.Percent:
		return 10
	default:
		return 0
	}
}

// isUnaryPrefix reports whether k can start a prefix unary expression.
func isUnaryPrefix(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Bang, token.Tilde,
		token.Star, token.Amp, token.PlusPlus, token.MinusMinus,
		token.KwSizeof:
		return true
	default:
		return false
	}
}
