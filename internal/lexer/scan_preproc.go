package lexer

import (
	"cvet/internal/token"
)

// scanPreprocessor consumes a whole directive line ('#include', '#define',
// ...) into a single Preprocessor token. Backslash-newline continuations are
// folded into the same token. Directives are never expanded.
func (lx *Lexer) scanPreprocessor() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			b0, b1, ok := lx.cursor.Peek2()
			_ = b0
			if ok && b1 == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Preprocessor, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
