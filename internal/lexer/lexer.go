package lexer

import (
	"cvet/internal/source"
	"cvet/internal/token"
)

// Lexer produces C tokens from a single source file. It never aborts:
// malformed input yields an Invalid token plus a report, and scanning
// resumes at the next clear boundary.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next significant token. Comment tokens appear only when
// Options.KeepComments is set. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipSpaces()

		if lx.cursor.EOF() {
			return lx.stamp(token.Token{
				Kind: token.EOF,
				Span: lx.EmptySpan(),
				Text: "",
			})
		}

		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '/' && (b1 == '/' || b1 == '*') {
			tok := lx.scanComment()
			if lx.opts.KeepComments {
				return lx.stamp(tok)
			}
			continue
		}
		break
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '#':
		tok = lx.scanPreprocessor()

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '\'':
		tok = lx.scanChar()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	return lx.stamp(tok)
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// stamp fills in the token's line/column from its span start.
func (lx *Lexer) stamp(tok token.Token) token.Token {
	lc := lx.file.LineCol(tok.Span.Start)
	tok.Line = lc.Line
	tok.Col = lc.Col
	return tok
}

func (lx *Lexer) skipSpaces() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			lx.cursor.Bump()
		default:
			return
		}
	}
}
