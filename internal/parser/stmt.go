package parser

import (
	"cvet/internal/ast"
	"cvet/internal/diag"
	"cvet/internal/token"
)

// parseBlock parses a brace-delimited statement list.
func (p *Parser) parseBlock(parent ast.NodeID) {
	if !p.enter() {
		return
	}
	defer p.leave()

	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return
	}
	blk := p.node(parent, ast.KindBlock, open, "")
	for !p.at(token.RBrace) && !p.at(token.EOF) && !p.aborted {
		p.parseStmt(blk)
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
	p.seal(blk, parent)
}

// parseStmt parses one statement and attaches it to parent. Empty
// statements and labels leave no node.
func (p *Parser) parseStmt(parent ast.NodeID) {
	if !p.enter() {
		return
	}
	defer p.leave()

	switch p.peek().Kind {
	case token.Semicolon:
		p.advance()
	case token.Preprocessor:
		p.advance()
	case token.LBrace:
		p.parseBlock(parent)
	case token.KwIf:
		p.parseIfStmt(parent)
	case token.KwWhile:
		p.parseWhileStmt(parent)
	case token.KwDo:
		p.parseDoWhileStmt(parent)
	case token.KwFor:
		p.parseForStmt(parent)
	case token.KwSwitch:
		p.parseSwitchStmt(parent)
	case token.KwCase:
		p.advance()
		if _, ok := p.parseExpr(); !ok {
			p.err(diag.SynExpectExpression, "expected case value")
		}
		p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after case value")
	case token.KwDefault:
		p.advance()
		p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after 'default'")
	case token.KwReturn:
		p.parseReturnStmt(parent)
	case token.KwBreak, token.KwContinue:
		kw := p.advance()
		s := p.node(parent, ast.KindExprStmt, kw, kw.Text)
		p.expectSemicolon()
		p.seal(s, parent)
	case token.KwGoto:
		kw := p.advance()
		p.expect(token.Ident, diag.SynExpectIdentifier, "expected label after 'goto'")
		s := p.node(parent, ast.KindExprStmt, kw, kw.Text)
		p.expectSemicolon()
		p.seal(s, parent)
	default:
		if p.peek().IsTypeKeyword() || p.at(token.KwTypedef) {
			p.parseLocalDecl(parent)
			return
		}
		p.parseExprStmt(parent)
	}
}

// parseLocalDecl parses a declaration in statement position.
func (p *Parser) parseLocalDecl(parent ast.NodeID) {
	start := p.peek()
	p.parseDeclSpecifiers()
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
	p.parseVarDeclTail(parent, start, nameTok)
}

// parseExprStmt parses an expression or assignment statement. A top-level
// assignment is attached directly; anything else is wrapped in ExprStmt.
func (p *Parser) parseExprStmt(parent ast.NodeID) {
	start := p.peek()
	expr, ok := p.parseExpr()
	if !ok {
		if !p.aborted {
			p.err(diag.SynUnexpectedToken, "expected statement, found "+describe(p.peek()))
			p.recoverStmt(parent, start)
		}
		return
	}

	// a lone identifier before ':' is a goto label, not an expression
	if p.at(token.Colon) && p.tree.Get(expr).Kind == ast.KindIdentifier {
		p.advance()
		return
	}

	if p.tree.Get(expr).Kind == ast.KindAssignment {
		p.attach(parent, expr)
	} else {
		s := p.node(parent, ast.KindExprStmt, start, "")
		p.attach(s, expr)
		p.seal(s, parent)
	}
	p.expectSemicolon()
}

func (p *Parser) parseIfStmt(parent ast.NodeID) {
	kw := p.advance()
	s := p.node(parent, ast.KindIfStmt, kw, "")
	p.parseCondParens(s, "'if'")
	p.parseStmt(s)
	if p.at(token.KwElse) {
		p.advance()
		p.parseStmt(s)
	}
	p.seal(s, parent)
}

func (p *Parser) parseWhileStmt(parent ast.NodeID) {
	kw := p.advance()
	s := p.node(parent, ast.KindWhileStmt, kw, "")
	p.parseCondParens(s, "'while'")
	p.parseStmt(s)
	p.seal(s, parent)
}

// parseDoWhileStmt builds a WhileStmt with Text "do"; the body child comes
// before the condition child, mirroring source order.
func (p *Parser) parseDoWhileStmt(parent ast.NodeID) {
	kw := p.advance()
	s := p.node(parent, ast.KindWhileStmt, kw, "do")
	p.parseStmt(s)
	if _, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do body"); ok {
		p.parseCondParens(s, "'while'")
	}
	p.expectSemicolon()
	p.seal(s, parent)
}

func (p *Parser) parseForStmt(parent ast.NodeID) {
	kw := p.advance()
	s := p.node(parent, ast.KindForStmt, kw, "")
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'"); ok {
		// init clause
		switch {
		case p.at(token.Semicolon):
			p.advance()
		case p.peek().IsTypeKeyword():
			p.parseLocalDecl(s)
		default:
			if expr, ok := p.parseExpr(); ok {
				p.attach(s, expr)
			}
			p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for initializer")
		}
		// condition clause
		if !p.at(token.Semicolon) {
			if expr, ok := p.parseExpr(); ok {
				p.attach(s, expr)
			}
		}
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for condition")
		// post clause
		if !p.at(token.RParen) {
			if expr, ok := p.parseExpr(); ok {
				p.attach(s, expr)
			}
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close for header")
	}
	p.parseStmt(s)
	p.seal(s, parent)
}

// parseSwitchStmt keeps switch shallow: an IfStmt node tagged "switch" with
// the scrutinee and the body block as children. case/default labels inside
// the block are consumed by parseStmt.
func (p *Parser) parseSwitchStmt(parent ast.NodeID) {
	kw := p.advance()
	s := p.node(parent, ast.KindIfStmt, kw, "switch")
	p.parseCondParens(s, "'switch'")
	if p.at(token.LBrace) {
		p.parseBlock(s)
	} else {
		p.parseStmt(s)
	}
	p.seal(s, parent)
}

func (p *Parser) parseReturnStmt(parent ast.NodeID) {
	kw := p.advance()
	s := p.node(parent, ast.KindReturnStmt, kw, "")
	if !p.at(token.Semicolon) {
		if expr, ok := p.parseExpr(); ok {
			p.attach(s, expr)
		} else if !p.aborted {
			p.err(diag.SynExpectExpression, "expected return value or ';'")
			p.resyncStmt()
			p.seal(s, parent)
			return
		}
	}
	p.expectSemicolon()
	p.seal(s, parent)
}

// parseCondParens parses a parenthesized controlling expression and attaches
// it to owner.
func (p *Parser) parseCondParens(owner ast.NodeID, after string) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after "+after); !ok {
		return
	}
	expr, ok := p.parseExpr()
	if ok {
		p.attach(owner, expr)
	} else if !p.aborted {
		p.err(diag.SynExpectExpression, "expected condition expression")
		p.resyncParam()
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close condition")
}

// expectSemicolon reports a missing ';'. It does not skip anything: the
// statement before it was parsed in full, so the next token usually starts
// a valid statement and resyncing would swallow it.
func (p *Parser) expectSemicolon() {
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
}
