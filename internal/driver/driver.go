// Package driver wires the analysis phases together: lex, parse, rules,
// report. It is the surface the CLI (and any other front end) calls.
package driver

import (
	"time"

	"cvet/internal/ast"
	"cvet/internal/diag"
	"cvet/internal/lexer"
	"cvet/internal/parser"
	"cvet/internal/pipeline"
	"cvet/internal/report"
	"cvet/internal/rules"
	"cvet/internal/source"
	"cvet/internal/token"
)

// DefaultMaxDiagnostics caps the diagnostic bag when the caller does not.
const DefaultMaxDiagnostics = 256

// Options configures one analysis. The zero value is usable.
type Options struct {
	MaxDiagnostics int
	// Parser complexity guards; zero keeps the parser defaults.
	MaxErrors uint
	MaxDepth  int
	MaxTokens int
	// Rule selection and re-ranking (from cvet.toml).
	Disabled  map[string]bool
	Overrides map[string]rules.Severity
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// AnalysisResult is the complete outcome for one input.
type AnalysisResult struct {
	Path     string
	FileSet  *source.FileSet
	File     *source.File
	Tokens   []token.Token
	Tree     *ast.Tree
	Bag      *diag.Bag
	Findings []rules.Finding
	Report   *report.Report
	Timing   *pipeline.Timings
}

// AnalyzeSource analyzes in-memory source. It never fails: malformed input
// produces diagnostics and findings, not errors. Each call is self-contained
// and shares no mutable state, so callers may run any number of analyses
// concurrently.
func AnalyzeSource(name string, src []byte, opts Options) *AnalysisResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return analyze(fs, fs.Get(fileID), name, opts)
}

// AnalyzeFile loads path and analyzes it. The only error path is I/O;
// analysis itself is total.
func AnalyzeFile(path string, opts Options) (*AnalysisResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return analyze(fs, fs.Get(fileID), path, opts), nil
}

func analyze(fs *source.FileSet, file *source.File, path string, opts Options) *AnalysisResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	timing := &pipeline.Timings{}

	start := time.Now()
	tokens := scanTokens(file, &lexer.ReporterAdapter{Bag: bag}, false)
	timing.Set(pipeline.StageLex, time.Since(start))

	// the parser runs its own lexer pass with reporting off so lexical
	// errors are not counted twice
	start = time.Now()
	plx := lexer.New(file, lexer.Options{})
	parsed := parser.Parse(file, plx, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: opts.MaxErrors,
		MaxDepth:  opts.MaxDepth,
		MaxTokens: opts.MaxTokens,
	})
	timing.Set(pipeline.StageParse, time.Since(start))

	start = time.Now()
	engine := &rules.Engine{
		Reporter:  &diag.BagReporter{Bag: bag},
		Disabled:  opts.Disabled,
		Overrides: opts.Overrides,
	}
	findings := engine.RunAll(&rules.Input{Tokens: tokens, Tree: parsed.Tree})
	timing.Set(pipeline.StageRules, time.Since(start))

	start = time.Now()
	bag.Sort()
	rep := report.Aggregate(findings, report.Meta{
		Path:         path,
		SyntaxErrors: errorCount(bag),
	})
	timing.Set(pipeline.StageReport, time.Since(start))

	return &AnalysisResult{
		Path:     path,
		FileSet:  fs,
		File:     file,
		Tokens:   tokens,
		Tree:     parsed.Tree,
		Bag:      bag,
		Findings: findings,
		Report:   rep,
		Timing:   timing,
	}
}

// scanTokens collects the whole token stream, excluding the trailing EOF.
func scanTokens(file *source.File, reporter lexer.Reporter, keepComments bool) []token.Token {
	lx := lexer.New(file, lexer.Options{
		Reporter:     reporter,
		KeepComments: keepComments,
	})
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func errorCount(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity == diag.SevError {
			n++
		}
	}
	return n
}
