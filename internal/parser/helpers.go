package parser

import (
	"cvet/internal/ast"
	"cvet/internal/diag"
	"cvet/internal/source"
	"cvet/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// next consumes a token without charging the complexity budget.
func (p *Parser) next() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// advance consumes a token and charges it against MaxTokens.
func (p *Parser) advance() token.Token {
	tok := p.next()
	if !p.aborted {
		p.consumed++
		if p.consumed > p.opts.MaxTokens {
			p.abort("token limit")
		}
	}
	return tok
}

// enter/leave guard recursion depth. enter returns false once the limit is
// hit; callers must bail out without recursing further.
func (p *Parser) enter() bool {
	if p.aborted {
		return false
	}
	p.depth++
	if p.depth > p.opts.MaxDepth {
		p.abort("nesting depth")
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// abort trips the complexity guard once; parsing unwinds and the remaining
// input is covered by a single ErrorNode.
func (p *Parser) abort(what string) {
	if p.aborted {
		return
	}
	p.report(diag.SynComplexityLimit, diag.SevError, p.diagSpan(),
		"complexity limit exceeded ("+what+")")
	p.aborted = true
}

// diagSpan picks the best span for a diagnostic: the upcoming token, or the
// position right after the last consumed token at EOF.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports code with msg.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, diag.SevError, sp, msg+", found "+describe(p.peek()))
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.peek().Text}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil || p.aborted {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if !p.opts.Enough() {
		p.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}

// describe renders a token for "expected X, found Y" messages.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Invalid:
		if tok.Text == "" {
			return "invalid token"
		}
		return "invalid token " + quoted(tok.Text)
	default:
		return quoted(tok.Text)
	}
}

func quoted(s string) string {
	const max = 24
	if len(s) > max {
		s = s[:max] + "..."
	}
	return "'" + s + "'"
}

// resyncStmt skips ahead to a statement boundary: past the next ';', or up
// to (not past) a '}'. Bounds error cascades after a bad statement.
func (p *Parser) resyncStmt() source.Span {
	end := p.lastSpan
	for !p.at(token.EOF) && !p.aborted {
		switch p.peek().Kind {
		case token.Semicolon:
			tok := p.advance()
			return tok.Span
		case token.RBrace, token.LBrace:
			return end
		default:
			tok := p.advance()
			end = tok.Span
		}
	}
	return end
}

// recoverStmt resyncs and attaches an ErrorNode covering the skipped span.
func (p *Parser) recoverStmt(parent ast.NodeID, from token.Token) {
	if !p.at(token.EOF) && !p.aborted && p.peek().Span == from.Span {
		// make progress even when the bad token is itself a boundary
		p.advance()
	}
	end := p.resyncStmt()
	p.attachErrorNode(parent, from, end)
}

func (p *Parser) attachErrorNode(parent ast.NodeID, from token.Token, end source.Span) {
	span := from.Span.Cover(end)
	endLC := p.file.LineCol(span.End)
	id := p.tree.NewNode(ast.KindErrorNode, span, "", firstLine(from), endLC.Line)
	p.tree.AppendChild(parent, id)
	p.tree.CoverLines(parent, firstLine(from), endLC.Line)
}

// node allocates a tree node from a starting token and attaches it.
func (p *Parser) node(parent ast.NodeID, kind ast.NodeKind, tok token.Token, text string) ast.NodeID {
	id := p.tree.NewNode(kind, tok.Span, text, firstLine(tok), firstLine(tok))
	if parent != ast.NoNodeID {
		p.tree.AppendChild(parent, id)
	}
	return id
}

// attach hangs an already-built node under parent and widens the parent's
// span and line range over it.
func (p *Parser) attach(parent, child ast.NodeID) {
	if child == ast.NoNodeID {
		return
	}
	p.tree.AppendChild(parent, child)
	c := p.tree.Get(child)
	span, startLine, endLine := c.Span, c.StartLine, c.EndLine
	n := p.tree.Get(parent)
	n.Span = n.Span.Cover(span)
	p.tree.CoverLines(parent, startLine, endLine)
}

// seal finishes a node and propagates its extent to the parent.
func (p *Parser) seal(id, parent ast.NodeID) {
	p.finish(id)
	n := p.tree.Get(id)
	span, startLine, endLine := n.Span, n.StartLine, n.EndLine
	if parent != ast.NoNodeID {
		pn := p.tree.Get(parent)
		pn.Span = pn.Span.Cover(span)
		p.tree.CoverLines(parent, startLine, endLine)
	}
}

// finish widens a node (and its parent chain is handled by callers) to the
// last consumed token.
func (p *Parser) finish(id ast.NodeID) {
	n := p.tree.Get(id)
	if n == nil {
		return
	}
	n.Span = n.Span.Cover(p.lastSpan)
	endLC := p.file.LineCol(p.lastSpan.End)
	p.tree.CoverLines(id, n.StartLine, endLC.Line)
}
