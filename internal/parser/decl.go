package parser

import (
	"cvet/internal/ast"
	"cvet/internal/diag"
	"cvet/internal/source"
	"cvet/internal/token"
)

// parseTopLevelDecl parses one external declaration: a function definition,
// a function prototype, or a global variable/typedef declaration.
func (p *Parser) parseTopLevelDecl(parent ast.NodeID) {
	start := p.peek()
	p.parseDeclSpecifiers()

	// a tagged struct/union/enum may stand alone: struct point { ... };
	if p.at(token.Semicolon) {
		p.advance()
		return
	}

	p.skipPointerStars()

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected declarator name")
	if !ok {
		p.recoverStmt(parent, start)
		return
	}

	if p.at(token.LParen) {
		p.parseFunctionDecl(parent, start, nameTok)
		return
	}
	p.parseVarDeclTail(parent, start, nameTok)
}

// parseDeclSpecifiers consumes the specifier run: storage class, qualifiers,
// base type keywords, and struct/union/enum heads with an optional tag and
// braced body.
func (p *Parser) parseDeclSpecifiers() {
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.KwStruct || tok.Kind == token.KwUnion || tok.Kind == token.KwEnum:
			p.advance()
			if p.at(token.Ident) {
				p.advance()
			}
			if p.at(token.LBrace) {
				p.skipBalanced(token.LBrace, token.RBrace)
			}
		case tok.IsTypeKeyword() || tok.Kind == token.KwTypedef ||
			tok.Kind == token.KwInline || tok.Kind == token.KwRestrict ||
			tok.Kind == token.KwAuto:
			p.advance()
		default:
			return
		}
	}
}

// skipPointerStars eats the '*' run of a declarator, with any interleaved
// qualifiers (char *const *p).
func (p *Parser) skipPointerStars() {
	for p.at(token.Star) || p.at(token.KwConst) || p.at(token.KwVolatile) || p.at(token.KwRestrict) {
		p.advance()
	}
}

// skipBalanced consumes from the opening token through its matching close,
// tolerating nesting. It stops early at EOF or when the complexity guard
// trips, and reports the unclosed pair in that case.
func (p *Parser) skipBalanced(open, close token.Kind) source.Span {
	end := p.advance().Span
	depth := 1
	for depth > 0 && !p.at(token.EOF) && !p.aborted {
		tok := p.advance()
		end = tok.Span
		switch tok.Kind {
		case open:
			depth++
		case close:
			depth--
		}
	}
	if depth > 0 {
		code := diag.SynUnclosedBrace
		switch open {
		case token.LParen:
			code = diag.SynUnclosedParen
		case token.LBracket:
			code = diag.SynUnclosedBracket
		}
		p.report(code, diag.SevError, p.diagSpan(), "expected "+quoted(closeText(close)))
	}
	return end
}

func closeText(k token.Kind) string {
	switch k {
	case token.RParen:
		return ")"
	case token.RBracket:
		return "]"
	default:
		return "}"
	}
}

// parseFunctionDecl parses the parameter list and either a body (function
// definition) or a trailing ';' (prototype). The node's Text is the
// function name.
func (p *Parser) parseFunctionDecl(parent ast.NodeID, start, nameTok token.Token) {
	fn := p.node(parent, ast.KindFunctionDecl, start, nameTok.Text)
	p.parseParamList(fn)

	switch {
	case p.at(token.LBrace):
		p.parseBlock(fn)
	case p.at(token.Semicolon):
		p.advance()
	default:
		p.err(diag.SynUnexpectedToken,
			"expected function body or ';', found "+describe(p.peek()))
		p.recoverStmt(fn, p.peek())
	}
	p.seal(fn, parent)
}

// parseParamList parses '(' params ')'. Each parameter becomes a VarDecl
// child; a lone 'void' and '...' leave no node.
func (p *Parser) parseParamList(fn ast.NodeID) {
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	if !ok {
		return
	}
	list := p.node(fn, ast.KindParamList, open, "")
	defer p.seal(list, fn)

	if p.at(token.RParen) {
		p.advance()
		return
	}
	if p.at(token.KwVoid) {
		void := p.advance()
		if p.at(token.RParen) {
			p.advance()
			return
		}
		p.parseParamTail(list, void)
	} else {
		p.parseParam(list)
	}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.Ellipsis) {
			p.advance()
			break
		}
		p.parseParam(list)
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list")
}

func (p *Parser) parseParam(list ast.NodeID) {
	start := p.peek()
	if !start.IsTypeKeyword() && !start.IsIdent() {
		p.err(diag.SynUnexpectedToken, "expected parameter, found "+describe(start))
		p.resyncParam()
		return
	}
	p.parseParamTail(list, start)
}

// parseParamTail parses a parameter whose leading token is start (already
// consumed only in the 'void' path). Typedef-name types are handled with a
// single token of lookahead: when two identifiers remain after the
// specifiers, the first is the type and the second the name.
func (p *Parser) parseParamTail(list ast.NodeID, start token.Token) {
	for {
		k := p.peek().Kind
		if k == token.KwStruct || k == token.KwUnion || k == token.KwEnum {
			p.advance()
			if p.at(token.Ident) {
				p.advance()
			}
			continue
		}
		if p.peek().IsTypeKeyword() {
			p.advance()
			continue
		}
		break
	}
	p.skipPointerStars()

	name := ""
	nameTok := start
	if p.at(token.Ident) {
		first := p.advance()
		p.skipPointerStars()
		if p.at(token.Ident) {
			nameTok = p.advance()
		} else {
			nameTok = first
		}
		name = nameTok.Text
	}

	d := p.node(list, ast.KindVarDecl, nameTok, name)
	for p.at(token.LBracket) {
		p.skipBalanced(token.LBracket, token.RBracket)
	}
	p.seal(d, list)
}

// resyncParam skips to the next ',' or ')' without consuming either.
func (p *Parser) resyncParam() {
	for !p.at(token.EOF) && !p.aborted {
		switch p.peek().Kind {
		case token.Comma, token.RParen, token.Semicolon, token.LBrace:
			return
		default:
			p.advance()
		}
	}
}

// parseVarDeclTail parses the declarator list after the first name: array
// suffixes, initializers, further comma-separated declarators, and the
// closing ';'. Shared by globals and locals.
func (p *Parser) parseVarDeclTail(parent ast.NodeID, start, nameTok token.Token) {
	for {
		d := p.node(parent, ast.KindVarDecl, nameTok, nameTok.Text)

		for p.at(token.LBracket) {
			p.advance()
			if !p.at(token.RBracket) {
				size, ok := p.parseExpr()
				if ok {
					p.attach(d, size)
				} else {
					p.err(diag.SynExpectExpression, "expected array size expression")
					p.resyncParam()
				}
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'"); !ok {
				break
			}
		}

		if p.at(token.Assign) {
			p.advance()
			init, ok := p.parseInitializer()
			if ok {
				p.attach(d, init)
			} else {
				p.err(diag.SynExpectExpression, "expected initializer")
				p.recoverStmt(parent, p.peek())
				p.seal(d, parent)
				return
			}
		}
		p.seal(d, parent)

		if !p.at(token.Comma) {
			break
		}
		p.advance()
		p.skipPointerStars()
		next, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected declarator name")
		if !ok {
			p.recoverStmt(parent, start)
			return
		}
		nameTok = next
	}

	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration")
}

// parseInitializer parses a scalar initializer expression or a braced
// aggregate. Aggregates stay opaque: one Literal node spanning the braces.
func (p *Parser) parseInitializer() (ast.NodeID, bool) {
	if p.at(token.LBrace) {
		open := p.peek()
		end := p.skipBalanced(token.LBrace, token.RBrace)
		id := p.exprNode(ast.KindLiteral, open, "")
		n := p.tree.Get(id)
		n.Span = n.Span.Cover(end)
		endLC := p.file.LineCol(n.Span.End)
		p.tree.CoverLines(id, n.StartLine, endLC.Line)
		return id, true
	}
	return p.parseExpr()
}
