package rules

import "strings"

// printf family, with the index of each function's format argument.
var formatArgIndex = map[string]int{
	"printf":    0,
	"fprintf":   1,
	"dprintf":   1,
	"sprintf":   1,
	"snprintf":  2,
	"vprintf":   0,
	"vfprintf":  1,
	"vsprintf":  1,
	"vsnprintf": 2,
	"syslog":    1,
}

// formatStringRule flags %n in format literals and non-literal format
// arguments, both of which hand write access to an attacker-controlled
// string.
type formatStringRule struct{}

func (*formatStringRule) ID() string      { return "format-string" }
func (*formatStringRule) NeedsTree() bool { return false }

func (*formatStringRule) Evaluate(in *Input) []Finding {
	var out []Finding
	for _, call := range extractCalls(in.Tokens) {
		idx, ok := formatArgIndex[call.Name]
		if !ok || len(call.Args) <= idx {
			continue
		}
		arg := call.Args[idx]

		if !isStringLiteralArg(arg) {
			out = append(out, Finding{
				RuleID:   "format-string",
				Severity: SevCritical,
				Line:     call.Line,
				Message:  "Non-literal format string passed to `" + call.Name + "()`.",
				Suggestion: "Use a constant format string and pass data as arguments, " +
					"e.g. `printf(\"%s\", input)`. [CWE-134]",
			})
			continue
		}
		for _, lit := range arg {
			if strings.Contains(unquote(lit.Text), "%n") {
				out = append(out, Finding{
					RuleID:     "format-string",
					Severity:   SevCritical,
					Line:       call.Line,
					Message:    "`%n` conversion in format string passed to `" + call.Name + "()`.",
					Suggestion: "Remove `%n`; it writes to memory and enables format-string attacks. [CWE-134]",
				})
				break
			}
		}
	}
	return out
}
