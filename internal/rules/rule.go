package rules

import (
	"sync"

	"cvet/internal/ast"
	"cvet/internal/token"
)

// Input is what a rule sees: the parser-facing token stream (comments
// filtered, preprocessor directives whole) and the parse tree. The tree is
// always present but may contain ErrorNodes when recovery kicked in.
type Input struct {
	Tokens []token.Token
	Tree   *ast.Tree
}

// Rule is one detection rule. Evaluate must be pure: same input, same
// findings. NeedsTree distinguishes token-pattern rules, which fire even
// when parsing failed entirely, from structural rules.
type Rule interface {
	ID() string
	NeedsTree() bool
	Evaluate(in *Input) []Finding
}

var (
	registryOnce sync.Once
	registry     []Rule
)

// All returns every registered rule in registration order. The registry is
// built on first use and read-only afterwards, so concurrent analyses can
// share it without locking.
func All() []Rule {
	registryOnce.Do(func() {
		registry = []Rule{
			&unsafeFunctionRule{},
			&formatStringRule{},
			&hardcodedSecretRule{},
			&commandInjectionRule{},
			&dangerousEvalRule{},
			&uncheckedMallocRule{},
		}
	})
	return registry
}
