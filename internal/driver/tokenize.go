package driver

import (
	"cvet/internal/diag"
	"cvet/internal/lexer"
	"cvet/internal/source"
	"cvet/internal/token"
)

// TokenizeResult carries one file's token stream with its diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize runs only the lexer over path. Comments are retained: a token
// dump shows the file as scanned, not as the parser sees it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics), nil
}

// TokenizeSource is Tokenize over in-memory input (stdin, tests).
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	tokens := scanTokens(file, &lexer.ReporterAdapter{Bag: bag}, true)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
