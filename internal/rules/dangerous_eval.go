package rules

// dangerousEvalRule flags any call to an identifier named eval. C has no
// standard eval, so a call by that name is an embedded interpreter boundary
// and a code-injection risk regardless of its argument.
type dangerousEvalRule struct{}

func (*dangerousEvalRule) ID() string      { return "dangerous-eval" }
func (*dangerousEvalRule) NeedsTree() bool { return false }

func (*dangerousEvalRule) Evaluate(in *Input) []Finding {
	var out []Finding
	for _, call := range extractCalls(in.Tokens) {
		if call.Name != "eval" {
			continue
		}
		out = append(out, Finding{
			RuleID:     "dangerous-eval",
			Severity:   SevCritical,
			Line:       call.Line,
			Message:    "Call to `eval()` detected.",
			Suggestion: "Do not evaluate runtime-built code; parse inputs into data instead. [CWE-94]",
		})
	}
	return out
}
