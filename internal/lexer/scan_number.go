package lexer

import (
	"cvet/internal/token"
)

// scanNumber handles C numeric literals: decimal, hex (0x...), octal
// (leading 0), floats with fraction/exponent, and integer/float suffixes
// (u, U, l, L, f, F in the usual combinations). Suffixes stay in Token.Text.
// Malformed forms are reported and yield an Invalid token; the cursor still
// moves past the bad lexeme so scanning continues.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// leading dot: ".digits" form
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishNumber(start, kind, lx.scanExponent(start))
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'x', 'X':
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				lx.eatNumberTail()
				sp := lx.cursor.SpanFrom(start)
				lx.report("BadNumber", sp, "hex literal needs at least one digit")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.scanIntSuffix()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		default:
			// octal or plain zero; a '.' or exponent below can still make it a float
			hadBadOctal := false
			for isDec(lx.cursor.Peek()) {
				if !isOct(lx.cursor.Peek()) {
					hadBadOctal = true
				}
				lx.cursor.Bump()
			}
			if hadBadOctal && lx.cursor.Peek() != '.' && lx.cursor.Peek() != 'e' && lx.cursor.Peek() != 'E' {
				lx.eatNumberTail()
				sp := lx.cursor.SpanFrom(start)
				lx.report("BadNumber", sp, "invalid digit in octal literal")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
		}
	} else {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// fraction
	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		// "1..." would be a weird member access chain; only consume the dot
		// when it is not followed by another dot
		if !ok || !(b0 == '.' && b1 == '.') {
			lx.cursor.Bump()
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	return lx.finishNumber(start, kind, lx.scanExponent(start))
}

// scanExponent consumes an optional e/E exponent. It returns false when the
// exponent was malformed (already reported).
func (lx *Lexer) scanExponent(start Mark) bool {
	if lx.cursor.Peek() != 'e' && lx.cursor.Peek() != 'E' {
		return true
	}
	// only treat as exponent if a digit (or sign+digit) follows
	b0, b1, ok := lx.cursor.Peek2()
	_ = b0
	if ok && (isDec(b1) || b1 == '+' || b1 == '-') {
		lx.cursor.Bump() // e/E
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.eatNumberTail()
			sp := lx.cursor.SpanFrom(start)
			lx.report("BadNumber", sp, "expected digit after exponent")
			return false
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return true
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind, expOK bool) token.Token {
	if !expOK {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	sp := lx.cursor.SpanFrom(start)
	for _, b := range lx.file.Content[sp.Start:sp.End] {
		if b == '.' || b == 'e' || b == 'E' {
			kind = token.FloatLit
			break
		}
	}
	if kind == token.FloatLit {
		lx.scanFloatSuffix()
	} else {
		lx.scanIntSuffix()
	}
	sp = lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// u/U and up to two l/L in any order.
func (lx *Lexer) scanIntSuffix() {
	seenU, seenL := false, 0
	for {
		b := lx.cursor.Peek()
		switch {
		case (b == 'u' || b == 'U') && !seenU:
			seenU = true
			lx.cursor.Bump()
		case (b == 'l' || b == 'L') && seenL < 2:
			seenL++
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) scanFloatSuffix() {
	b := lx.cursor.Peek()
	if b == 'f' || b == 'F' || b == 'l' || b == 'L' {
		lx.cursor.Bump()
	}
}

// eatNumberTail skips forward to the next clear boundary after a malformed
// numeric literal so the rest of the file still tokenizes.
func (lx *Lexer) eatNumberTail() {
	for {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) || b == '.' {
			lx.cursor.Bump()
			continue
		}
		return
	}
}
