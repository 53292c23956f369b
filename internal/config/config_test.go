package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"cvet/internal/config"
	"cvet/internal/rules"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rules]
disabled = ["dangerous-eval"]

[rules.severity]
"unchecked-malloc" = "critical"

[limits]
max_depth = 64
max_tokens = 50000

[cache]
enabled = true
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.DisabledSet()["dangerous-eval"] {
		t.Error("dangerous-eval not in disabled set")
	}
	if got := cfg.SeverityOverrides()["unchecked-malloc"]; got != rules.SevCritical {
		t.Errorf("override = %v, want Critical", got)
	}
	if cfg.Limits.MaxDepth != 64 || cfg.Limits.MaxTokens != 50000 {
		t.Errorf("limits = %+v", cfg.Limits)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache.enabled not set")
	}
}

func TestLoadRejectsUnknownRule(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rules]
disabled = ["no-such-rule"]
`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("want error for unknown rule ID")
	}
}

func TestLoadRejectsBadSeverity(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rules.severity]
"unsafe-function" = "fatal"
`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("want error for unknown severity")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := config.Find(nested); got != filepath.Join(root, config.FileName) {
		t.Errorf("Find = %q, want manifest at root", got)
	}
}

func TestFindMissing(t *testing.T) {
	if got := config.Find(t.TempDir()); got != "" {
		t.Errorf("Find = %q, want empty", got)
	}
}
