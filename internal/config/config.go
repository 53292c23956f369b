// Package config loads cvet.toml, the per-project analysis configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"cvet/internal/rules"
)

// FileName is the manifest cvet looks for in the scanned directory and its
// parents.
const FileName = "cvet.toml"

// Config is the merged analysis configuration.
type Config struct {
	Rules  RulesConfig  `toml:"rules"`
	Limits LimitsConfig `toml:"limits"`
	Cache  CacheConfig  `toml:"cache"`
}

// RulesConfig selects and re-ranks rules.
type RulesConfig struct {
	// Disabled lists rule IDs that must not run.
	Disabled []string `toml:"disabled"`
	// Severity overrides finding severity per rule ID; values are
	// "critical", "warning", or "suggestion".
	Severity map[string]string `toml:"severity"`
}

// LimitsConfig bounds parser complexity. Zero keeps the defaults.
type LimitsConfig struct {
	MaxDepth  int  `toml:"max_depth"`
	MaxTokens int  `toml:"max_tokens"`
	MaxErrors uint `toml:"max_errors"`
}

// CacheConfig controls the on-disk report cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used when no cvet.toml exists.
func Default() Config {
	return Config{}
}

// Load parses a cvet.toml file.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Find walks from dir upward looking for cvet.toml and returns its path, or
// "" when no manifest exists.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	known := make(map[string]bool)
	for _, r := range rules.All() {
		known[r.ID()] = true
	}
	for _, id := range c.Rules.Disabled {
		if !known[id] {
			return fmt.Errorf("%s: unknown rule %q in rules.disabled", path, id)
		}
	}
	for id, sev := range c.Rules.Severity {
		if !known[id] {
			return fmt.Errorf("%s: unknown rule %q in rules.severity", path, id)
		}
		if _, err := ParseSeverity(sev); err != nil {
			return fmt.Errorf("%s: rule %q: %w", path, id, err)
		}
	}
	return nil
}

// ParseSeverity maps a config string to a finding severity.
func ParseSeverity(s string) (rules.Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return rules.SevCritical, nil
	case "warning":
		return rules.SevWarning, nil
	case "suggestion":
		return rules.SevSuggestion, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

// DisabledSet converts the disabled list to the engine's lookup form.
func (c *Config) DisabledSet() map[string]bool {
	if len(c.Rules.Disabled) == 0 {
		return nil
	}
	out := make(map[string]bool, len(c.Rules.Disabled))
	for _, id := range c.Rules.Disabled {
		out[id] = true
	}
	return out
}

// SeverityOverrides converts the severity table to the engine's form.
// Load validated the values, so parse failures are skipped silently here.
func (c *Config) SeverityOverrides() map[string]rules.Severity {
	if len(c.Rules.Severity) == 0 {
		return nil
	}
	out := make(map[string]rules.Severity, len(c.Rules.Severity))
	for id, s := range c.Rules.Severity {
		if sev, err := ParseSeverity(s); err == nil {
			out[id] = sev
		}
	}
	return out
}
