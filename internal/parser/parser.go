package parser

import (
	"cvet/internal/ast"
	"cvet/internal/diag"
	"cvet/internal/lexer"
	"cvet/internal/source"
	"cvet/internal/token"
)

const (
	// DefaultMaxDepth bounds statement/expression nesting per parse call.
	DefaultMaxDepth = 128
	// DefaultMaxTokens bounds tokens consumed per parse call.
	DefaultMaxTokens = 1_000_000
)

type Options struct {
	Reporter diag.Reporter
	// MaxErrors caps reported syntax errors; 0 means unlimited.
	MaxErrors     uint
	CurrentErrors uint
	// MaxDepth/MaxTokens are the structural complexity guards. Zero selects
	// the defaults.
	MaxDepth  int
	MaxTokens int
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree *ast.Tree
	Bag  *diag.Bag
}

// Parser holds per-file parsing state.
type Parser struct {
	lx       *lexer.Lexer
	tree     *ast.Tree
	file     *source.File
	opts     Options
	lastSpan source.Span
	depth    int
	consumed int
	aborted  bool // complexity limit tripped; unwind without new errors
}

// Parse consumes the lexer's token stream and builds a parse tree. It never
// fails: malformed input yields ErrorNodes plus diagnostics, and the result
// always carries a tree with exactly one Program root.
func Parse(file *source.File, lx *lexer.Lexer, opts Options) Result {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}

	first := lx.Peek()
	p := Parser{
		lx:       lx,
		tree:     ast.NewTree(first.Span, firstLine(first), firstLine(first)),
		file:     file,
		opts:     opts,
		lastSpan: first.Span,
	}

	p.parseTranslationUnit()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Tree: p.tree,
		Bag:  bag,
	}
}

func firstLine(tok token.Token) uint32 {
	if tok.Line == 0 {
		return 1
	}
	return tok.Line
}

// parseTranslationUnit is the top-level loop: function definitions and
// global declarations until EOF.
func (p *Parser) parseTranslationUnit() {
	root := p.tree.Root()
	for !p.at(token.EOF) && !p.aborted {
		switch {
		case p.at(token.Preprocessor):
			// directives are tokenized whole and never expanded
			p.advance()
		case p.peek().IsTypeKeyword() || p.at(token.KwTypedef):
			p.parseTopLevelDecl(root)
		default:
			// analysis input is often a fragment, so statements are
			// tolerated outside function bodies
			p.parseStmt(root)
		}
	}
	if p.aborted {
		// cover whatever was not consumed with a single error node
		start := p.peek()
		end := p.skipToEOF()
		p.attachErrorNode(root, start, end)
	}
	p.tree.CoverLines(root, 1, p.lastLine())
}

func (p *Parser) lastLine() uint32 {
	lc := p.file.LineCol(p.lastSpan.End)
	return lc.Line
}

func (p *Parser) skipToEOF() source.Span {
	end := p.lastSpan
	for !p.at(token.EOF) {
		tok := p.next()
		end = tok.Span
	}
	return end
}
