package lexer

import (
	"cvet/internal/token"
)

// scanComment consumes a // line comment or a /* */ block comment into a
// single Comment token. An unterminated block comment is reported and
// truncated at EOF rather than failing the scan.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	second := lx.cursor.Bump()

	if second == '/' {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Comment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// block comment; C block comments do not nest
	for !lx.cursor.EOF() {
		if lx.try2('*', '/') {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Comment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report("UnterminatedBlockComment", sp, "unterminated block comment")
	return token.Token{Kind: token.Comment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
