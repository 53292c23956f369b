package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"cvet/internal/report"
	"cvet/internal/rules"
)

// FormatReportPretty writes the verdict and one line per finding, colored
// by severity when enabled.
func FormatReportPretty(w io.Writer, rep *report.Report, colored bool) error {
	if rep == nil {
		return nil
	}
	if len(rep.Messages) > 0 {
		fmt.Fprintln(w, paintSummary(rep.Messages[0], rep.OverallSafe, colored))
	}
	for _, f := range rep.Findings {
		fmt.Fprintln(w, "  "+paintFinding(f, colored))
	}
	return nil
}

func paintSummary(summary string, safe, colored bool) string {
	if !colored {
		return summary
	}
	if safe {
		return color.New(color.FgGreen, color.Bold).Sprint(summary)
	}
	return color.New(color.FgRed, color.Bold).Sprint(summary)
}

func paintFinding(f rules.Finding, colored bool) string {
	line := report.FormatFinding(f)
	if !colored {
		return line
	}
	switch f.Severity {
	case rules.SevCritical:
		return color.New(color.FgRed).Sprint(line)
	case rules.SevWarning:
		return color.New(color.FgYellow).Sprint(line)
	default:
		return color.New(color.FgBlue).Sprint(line)
	}
}

// FindingJSON is one rule finding in machine-readable form.
type FindingJSON struct {
	RuleID     string `json:"rule_id"`
	Severity   string `json:"severity"`
	Line       uint32 `json:"line,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ReportJSON is the machine-readable verdict for one file.
type ReportJSON struct {
	Path        string        `json:"path,omitempty"`
	OverallSafe bool          `json:"overall_safe"`
	Findings    []FindingJSON `json:"findings"`
}

// BuildReportJSON converts a report without serializing it.
func BuildReportJSON(path string, rep *report.Report) ReportJSON {
	out := ReportJSON{
		Path:        path,
		OverallSafe: rep.OverallSafe,
		Findings:    make([]FindingJSON, 0, len(rep.Findings)),
	}
	for _, f := range rep.Findings {
		out.Findings = append(out.Findings, FindingJSON{
			RuleID:     f.RuleID,
			Severity:   f.Severity.String(),
			Line:       f.Line,
			Message:    f.Message,
			Suggestion: f.Suggestion,
		})
	}
	return out
}

// FormatReportJSON writes the verdict as an indented JSON document.
func FormatReportJSON(w io.Writer, path string, rep *report.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildReportJSON(path, rep))
}
