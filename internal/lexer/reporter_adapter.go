package lexer

import (
	"cvet/internal/diag"
	"cvet/internal/source"
)

// ReporterAdapter converts the lexer's string-keyed reports into diag codes
// collected in a Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

var lexCodes = map[string]diag.Code{
	"UnknownChar":              diag.LexUnknownChar,
	"UnterminatedString":       diag.LexUnterminatedString,
	"UnterminatedChar":         diag.LexUnterminatedChar,
	"UnterminatedBlockComment": diag.LexUnterminatedBlockComment,
	"BadNumber":                diag.LexBadNumber,
}

func (r *ReporterAdapter) Report(kind string, span source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	code, ok := lexCodes[kind]
	if !ok {
		code = diag.UnknownCode
	}
	r.Bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
