package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cvet/internal/config"
	"cvet/internal/driver"
)

// analysisOptions builds driver options from the persistent flags and the
// nearest cvet.toml, looked up from the analyzed path upward. For stdin
// input the lookup starts at the working directory.
func analysisOptions(cmd *cobra.Command, path string) (driver.Options, config.Config, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, config.Config{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	cfg := config.Default()
	if manifest := config.Find(configLookupDir(path)); manifest != "" {
		cfg, err = config.Load(manifest)
		if err != nil {
			return driver.Options{}, config.Config{}, err
		}
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		MaxErrors:      cfg.Limits.MaxErrors,
		MaxDepth:       cfg.Limits.MaxDepth,
		MaxTokens:      cfg.Limits.MaxTokens,
		Disabled:       cfg.DisabledSet(),
		Overrides:      cfg.SeverityOverrides(),
	}
	return opts, cfg, nil
}

func configLookupDir(path string) string {
	if path == "" || path == "-" {
		return "."
	}
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
