// Package report turns rule findings into the final analysis verdict and
// exposes traversal and export of the parse tree for external renderers.
package report

import (
	"fmt"

	"cvet/internal/rules"
)

// Meta carries the analysis context the aggregator mentions in its summary.
type Meta struct {
	// Path of the analyzed file; empty for raw source input.
	Path string
	// SyntaxErrors is the number of lexer and parser diagnostics.
	SyntaxErrors int
}

// Report is the immutable outcome of one analysis.
type Report struct {
	Findings []rules.Finding
	// OverallSafe is true iff no Critical and no Warning finding exists.
	// Suggestions never affect the verdict.
	OverallSafe bool
	// Messages holds one summary line followed by one line per finding.
	Messages []string
}

// Aggregate builds a Report from findings in their evaluation order. It is
// pure: same findings and meta, same report.
func Aggregate(findings []rules.Finding, meta Meta) *Report {
	r := &Report{
		Findings:    findings,
		OverallSafe: true,
		Messages:    make([]string, 0, len(findings)+1),
	}
	for _, f := range findings {
		if f.Severity == rules.SevCritical || f.Severity == rules.SevWarning {
			r.OverallSafe = false
		}
	}
	r.Messages = append(r.Messages, summaryLine(findings, meta))
	for _, f := range findings {
		r.Messages = append(r.Messages, FormatFinding(f))
	}
	return r
}

func summaryLine(findings []rules.Finding, meta Meta) string {
	where := ""
	if meta.Path != "" {
		where = " in " + meta.Path
	}
	suffix := ""
	if meta.SyntaxErrors > 0 {
		suffix = fmt.Sprintf(" (%d syntax diagnostic(s))", meta.SyntaxErrors)
	}
	if len(findings) == 0 {
		return "No issues found" + where + suffix
	}
	return fmt.Sprintf("%d issue(s) found%s%s", len(findings), where, suffix)
}

// FormatFinding renders one finding as a single human-readable line.
func FormatFinding(f rules.Finding) string {
	line := f.Severity.String() + ": " + f.Message
	if f.Line > 0 {
		line += fmt.Sprintf(" (line %d)", f.Line)
	}
	if f.Suggestion != "" {
		line += " Suggested fix: " + f.Suggestion
	}
	return line
}
