package rules

import (
	"cvet/internal/token"
)

// tokenCall is a call site recovered from the raw token stream. Token-level
// extraction keeps the token-pattern rules working even when the parser gave
// up on the surrounding code.
type tokenCall struct {
	Name string
	Line uint32
	Args [][]token.Token
}

// extractCalls finds ident '(' sequences and splits their argument lists on
// top-level commas. Nested calls are reported separately at their own
// position in the stream.
func extractCalls(tokens []token.Token) []tokenCall {
	var out []tokenCall
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind != token.Ident || tokens[i+1].Kind != token.LParen {
			continue
		}
		call := tokenCall{Name: tokens[i].Text, Line: tokens[i].Line}

		depth := 1
		var arg []token.Token
		j := i + 2
		for ; j < len(tokens) && depth > 0; j++ {
			t := tokens[j]
			switch t.Kind {
			case token.LParen:
				depth++
				arg = append(arg, t)
			case token.RParen:
				depth--
				if depth > 0 {
					arg = append(arg, t)
				}
			case token.Comma:
				if depth == 1 {
					call.Args = append(call.Args, arg)
					arg = nil
				} else {
					arg = append(arg, t)
				}
			case token.EOF:
				depth = 0
			default:
				arg = append(arg, t)
			}
		}
		if len(arg) > 0 || len(call.Args) > 0 {
			call.Args = append(call.Args, arg)
		}
		out = append(out, call)
	}
	return out
}

// isStringLiteralArg reports whether the argument is a compile-time string:
// one literal, or several adjacent literals (C concatenation).
func isStringLiteralArg(arg []token.Token) bool {
	if len(arg) == 0 {
		return false
	}
	for _, t := range arg {
		if t.Kind != token.StringLit {
			return false
		}
	}
	return true
}

// unquote strips the surrounding quotes from a string literal lexeme.
func unquote(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}
