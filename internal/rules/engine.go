package rules

import (
	"fmt"

	"cvet/internal/diag"
	"cvet/internal/source"
)

// Engine evaluates the registered rules over one analysis input.
type Engine struct {
	// Reporter receives engine diagnostics (rule faults). Optional.
	Reporter diag.Reporter
	// Disabled rule IDs are skipped.
	Disabled map[string]bool
	// Overrides maps rule ID to a forced finding severity.
	Overrides map[string]Severity
}

// RunAll evaluates every registered rule in registration order and
// concatenates their findings. A panicking rule contributes nothing and is
// reported as a RuleEngineFault; the remaining rules still run.
func (e *Engine) RunAll(in *Input) []Finding {
	var out []Finding
	for _, rule := range All() {
		if e.Disabled[rule.ID()] {
			continue
		}
		findings := e.evaluate(rule, in)
		if sev, ok := e.Overrides[rule.ID()]; ok {
			for i := range findings {
				findings[i].Severity = sev
			}
		}
		out = append(out, findings...)
	}
	return out
}

func (e *Engine) evaluate(rule Rule, in *Input) (findings []Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			if e.Reporter != nil {
				e.Reporter.Report(diag.RuleEngineFault, diag.SevWarning, source.Span{},
					fmt.Sprintf("rule %s failed: %v", rule.ID(), r), nil)
			}
		}
	}()
	return rule.Evaluate(in)
}
