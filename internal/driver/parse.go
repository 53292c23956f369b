package driver

import (
	"cvet/internal/ast"
	"cvet/internal/diag"
	"cvet/internal/lexer"
	"cvet/internal/parser"
	"cvet/internal/source"
)

// ParseResult carries one file's parse tree with its diagnostics.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree
	Bag     *diag.Bag
}

// Parse runs the lexer and parser over path without rule evaluation.
func Parse(path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fs.Get(fileID), opts), nil
}

// ParseSource is Parse over in-memory input.
func ParseSource(name string, src []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return parseFile(fs, fs.Get(fileID), opts)
}

func parseFile(fs *source.FileSet, file *source.File, opts Options) *ParseResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	parsed := parser.Parse(file, lx, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: opts.MaxErrors,
		MaxDepth:  opts.MaxDepth,
		MaxTokens: opts.MaxTokens,
	})
	bag.Sort()
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    parsed.Tree,
		Bag:     bag,
	}
}
