package rules

// Severity ranks a finding. It is distinct from diagnostic severity: rule
// findings describe the analyzed program, diagnostics describe the analysis.
type Severity uint8

const (
	SevSuggestion Severity = iota
	SevWarning
	SevCritical
)

var severityNames = [...]string{
	SevSuggestion: "Suggestion",
	SevWarning:    "Warning",
	SevCritical:   "Critical",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "Unknown"
}

// Finding is one reported potential vulnerability. Findings are immutable
// once produced; Line is 0 when the finding has no useful location.
type Finding struct {
	RuleID     string
	Severity   Severity
	Line       uint32
	Message    string
	Suggestion string
}
