package rules

// commandInjectionRule flags system/popen calls whose command argument is
// not a compile-time string literal. A literal command cannot carry
// attacker input; anything else can.
type commandInjectionRule struct{}

func (*commandInjectionRule) ID() string      { return "command-injection" }
func (*commandInjectionRule) NeedsTree() bool { return false }

func (*commandInjectionRule) Evaluate(in *Input) []Finding {
	var out []Finding
	for _, call := range extractCalls(in.Tokens) {
		if call.Name != "system" && call.Name != "popen" {
			continue
		}
		if len(call.Args) == 0 || isStringLiteralArg(call.Args[0]) {
			continue
		}
		out = append(out, Finding{
			RuleID:   "command-injection",
			Severity: SevCritical,
			Line:     call.Line,
			Message:  "Non-constant command passed to `" + call.Name + "()`.",
			Suggestion: "Avoid `" + call.Name + "()` with runtime-built commands; " +
				"use exec-style APIs with fixed argument vectors. [CWE-78]",
		})
	}
	return out
}
