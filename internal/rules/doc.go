// Package rules hosts the vulnerability detection rules and the engine that
// runs them. Rules are registered once at startup into a read-only registry;
// each rule inspects the token stream, the parse tree, or both, and emits
// findings. A rule that panics is contained by the engine so the rest of the
// report is unaffected.
package rules
