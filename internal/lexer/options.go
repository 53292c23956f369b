package lexer

import (
	"cvet/internal/source"
)

// Reporter is the thin error sink used by the lexer, so this package does
// not depend on diag directly. The adapter in reporter_adapter.go bridges
// into the diagnostics layer.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	// Reporter may be nil; errors are then dropped (scanning continues
	// regardless).
	Reporter Reporter
	// KeepComments controls whether Comment tokens appear in the stream.
	// The raw stream retains them; the parser-facing stream filters them.
	KeepComments bool
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
