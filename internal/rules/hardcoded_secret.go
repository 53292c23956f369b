package rules

import (
	"strings"

	"golang.org/x/text/cases"

	"cvet/internal/token"
)

var secretNames = []string{"password", "passwd", "secret", "apikey", "token"}

// hardcodedSecretRule flags string literals assigned to identifiers whose
// names look like credentials. Matching is token-based (declaration or
// plain assignment both fire) and case-insensitive via Unicode case
// folding.
type hardcodedSecretRule struct{}

func (*hardcodedSecretRule) ID() string      { return "hardcoded-secret" }
func (*hardcodedSecretRule) NeedsTree() bool { return false }

func (*hardcodedSecretRule) Evaluate(in *Input) []Finding {
	var out []Finding
	tokens := in.Tokens

	var lastIdent token.Token
	haveIdent := false
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.Kind {
		case token.Ident:
			lastIdent = t
			haveIdent = true
		case token.LBracket, token.RBracket, token.IntLit:
			// array declarator between the name and '=' keeps the match
		case token.Assign:
			if haveIdent && i+1 < len(tokens) && tokens[i+1].Kind == token.StringLit &&
				looksLikeSecret(lastIdent.Text) {
				out = append(out, Finding{
					RuleID:   "hardcoded-secret",
					Severity: SevWarning,
					Line:     lastIdent.Line,
					Message:  "Hardcoded credential assigned to `" + lastIdent.Text + "`.",
					Suggestion: "Load secrets from the environment or a secret store " +
						"instead of embedding them in source. [CWE-798]",
				})
			}
			haveIdent = false
		default:
			haveIdent = false
		}
	}
	return out
}

func looksLikeSecret(name string) bool {
	// Casers carry transform state, so one is built per call rather than
	// shared across concurrent analyses.
	folded := cases.Fold().String(name)
	for _, probe := range secretNames {
		if strings.Contains(folded, probe) {
			return true
		}
	}
	return false
}
