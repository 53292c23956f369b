package parser

import (
	"cvet/internal/ast"
	"cvet/internal/diag"
	"cvet/internal/token"
)

// exprNode builds a detached expression node and hangs children under it,
// widening the node's span and line range over everything it covers.
func (p *Parser) exprNode(kind ast.NodeKind, tok token.Token, text string, children ...ast.NodeID) ast.NodeID {
	id := p.node(ast.NoNodeID, kind, tok, text)
	for _, child := range children {
		if child == ast.NoNodeID {
			continue
		}
		p.tree.AppendChild(id, child)
		c := p.tree.Get(child)
		n := p.tree.Get(id)
		n.Span = n.Span.Cover(c.Span)
		p.tree.CoverLines(id, c.StartLine, c.EndLine)
	}
	return id
}

// parseExpr is the entry point for expressions. Assignment is the lowest
// precedence level and right-associative, matching C.
func (p *Parser) parseExpr() (ast.NodeID, bool) {
	if !p.enter() {
		return ast.NoNodeID, false
	}
	defer p.leave()

	left, ok := p.parseBinaryExpr(1)
	if !ok {
		return ast.NoNodeID, false
	}

	if p.at(token.Question) {
		qTok := p.advance()
		thenExpr, ok := p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '?'")
			return left, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression"); !ok {
			return p.exprNode(ast.KindBinaryExpr, qTok, "?:", left, thenExpr), false
		}
		elseExpr, ok := p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after ':'")
			return p.exprNode(ast.KindBinaryExpr, qTok, "?:", left, thenExpr), false
		}
		return p.exprNode(ast.KindBinaryExpr, qTok, "?:", left, thenExpr, elseExpr), true
	}

	if p.peek().IsAssignOp() {
		opTok := p.advance()
		right, ok := p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after "+quoted(opTok.Text))
			return left, false
		}
		return p.exprNode(ast.KindAssignment, opTok, opTok.Text, left, right), true
	}

	return left, true
}

// parseBinaryExpr implements precedence climbing over binaryPrec's table.
// All levels in the table are left-associative.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.NodeID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoNodeID, false
	}

	for {
		opKind := p.peek().Kind
		prec := binaryPrec(opKind)
		if prec == 0 || prec < minPrec {
			return left, true
		}

		opTok := p.advance()
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after "+quoted(opTok.Text))
			return left, false
		}
		left = p.exprNode(ast.KindBinaryExpr, opTok, opTok.Text, left, right)
	}
}

// parseUnaryExpr handles prefix operators (right-associative).
func (p *Parser) parseUnaryExpr() (ast.NodeID, bool) {
	if !p.enter() {
		return ast.NoNodeID, false
	}
	defer p.leave()

	var prefixes []token.Token
	for isUnaryPrefix(p.peek().Kind) {
		prefixes = append(prefixes, p.advance())
	}

	expr, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoNodeID, false
	}

	for i := len(prefixes) - 1; i >= 0; i-- {
		expr = p.exprNode(ast.KindUnaryExpr, prefixes[i], prefixes[i].Text, expr)
	}
	return expr, true
}

// parsePostfixExpr handles calls, subscripts, member access, and the
// postfix ++/-- pair.
func (p *Parser) parsePostfixExpr() (ast.NodeID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoNodeID, false
	}

	for {
		switch p.peek().Kind {
		case token.LParen:
			expr, ok = p.parseCallExpr(expr)
			if !ok {
				return expr, false
			}
		case token.LBracket:
			open := p.advance()
			index, ok := p.parseExpr()
			if !ok {
				p.err(diag.SynExpectExpression, "expected subscript expression")
				return expr, false
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'"); !ok {
				return p.exprNode(ast.KindIndexExpr, open, "", expr, index), false
			}
			expr = p.exprNode(ast.KindIndexExpr, open, "", expr, index)
		case token.Dot, token.Arrow:
			opTok := p.advance()
			nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected member name")
			if !ok {
				return expr, false
			}
			member := p.exprNode(ast.KindIdentifier, nameTok, nameTok.Text)
			expr = p.exprNode(ast.KindBinaryExpr, opTok, opTok.Text, expr, member)
		case token.PlusPlus, token.MinusMinus:
			opTok := p.advance()
			expr = p.exprNode(ast.KindUnaryExpr, opTok, opTok.Text, expr)
		default:
			return expr, true
		}
	}
}

// parseCallExpr parses the argument list after a callee. When the callee is
// a plain identifier its name is absorbed into the CallExpr node's Text and
// the children are exactly the arguments; otherwise the callee stays as the
// first child.
func (p *Parser) parseCallExpr(callee ast.NodeID) (ast.NodeID, bool) {
	open := p.advance() // '('

	name := ""
	children := []ast.NodeID{callee}
	if c := p.tree.Get(callee); c.Kind == ast.KindIdentifier {
		name = c.Text
		children = nil
	}

	var args []ast.NodeID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				p.err(diag.SynExpectExpression, "expected call argument")
				call := p.exprNode(ast.KindCallExpr, open, name, append(children, args...)...)
				p.seedCallStart(call, callee)
				return call, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	_, closed := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close call")
	call := p.exprNode(ast.KindCallExpr, open, name, append(children, args...)...)
	p.seedCallStart(call, callee)
	return call, closed
}

// seedCallStart pulls a call node's span/lines back to its callee so the
// reported line is where the name appears, not the '('.
func (p *Parser) seedCallStart(call, callee ast.NodeID) {
	c := p.tree.Get(callee)
	span, startLine, endLine := c.Span, c.StartLine, c.EndLine
	n := p.tree.Get(call)
	n.Span = n.Span.Cover(span).Cover(p.lastSpan)
	p.tree.CoverLines(call, startLine, endLine)
}

func (p *Parser) parsePrimaryExpr() (ast.NodeID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.CharLit:
		p.advance()
		return p.exprNode(ast.KindLiteral, tok, tok.Text), true
	case token.Ident:
		p.advance()
		return p.exprNode(ast.KindIdentifier, tok, tok.Text), true
	case token.LParen:
		p.advance()
		if p.peek().IsTypeKeyword() {
			return p.parseTypeParen()
		}
		inner, ok := p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '('")
			return ast.NoNodeID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return inner, false
		}
		return inner, true
	default:
		return ast.NoNodeID, false
	}
}

// parseTypeParen handles a parenthesized type name after the '(' has been
// consumed: either a cast prefix or the operand of sizeof. A cast wraps its
// operand in a UnaryExpr tagged "cast"; a bare type name (sizeof(int))
// becomes an Identifier carrying the base type text.
func (p *Parser) parseTypeParen() (ast.NodeID, bool) {
	typeTok := p.peek()
	for p.peek().IsTypeKeyword() {
		tok := p.advance()
		if (tok.Kind == token.KwStruct || tok.Kind == token.KwUnion || tok.Kind == token.KwEnum) &&
			p.at(token.Ident) {
			p.advance()
		}
	}
	p.skipPointerStars()
	for p.at(token.LBracket) {
		p.skipBalanced(token.LBracket, token.RBracket)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after type name"); !ok {
		return ast.NoNodeID, false
	}

	if startsExpr(p.peek()) {
		operand, ok := p.parseUnaryExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after cast")
			return ast.NoNodeID, false
		}
		return p.exprNode(ast.KindUnaryExpr, typeTok, "cast", operand), true
	}
	return p.exprNode(ast.KindIdentifier, typeTok, typeTok.Text), true
}

func startsExpr(tok token.Token) bool {
	switch tok.Kind {
	case token.Ident, token.IntLit, token.FloatLit, token.StringLit, token.CharLit, token.LParen:
		return true
	}
	return isUnaryPrefix(tok.Kind)
}
