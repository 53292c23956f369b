package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cvet/internal/config"
	"cvet/internal/diagfmt"
	"cvet/internal/driver"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <file.c|directory|->",
	Short: "Scan C sources for security vulnerabilities",
	Long: `Scan runs every registered vulnerability rule over a C source file,
a directory of *.c and *.h files, or standard input ("-")`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().Int("jobs", 0, "max parallel workers for directory scans (0=auto)")
	scanCmd.Flags().String("ui", "auto", "progress UI for directory scans (auto|on|off)")
	scanCmd.Flags().Bool("cache", false, "cache per-file reports on disk (also via cvet.toml)")
	scanCmd.Flags().Bool("drop-cache", false, "discard the report cache before scanning")
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, cfg, err := analysisOptions(cmd, path)
	if err != nil {
		return err
	}

	var results []*driver.AnalysisResult
	switch {
	case path == "-":
		src, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		results = []*driver.AnalysisResult{driver.AnalyzeSource("<stdin>", src, opts)}
	default:
		st, statErr := os.Stat(path)
		if statErr != nil {
			return fmt.Errorf("failed to stat path: %w", statErr)
		}
		if st.IsDir() {
			results, err = scanDir(cmd, path, opts, cfg)
		} else {
			var res *driver.AnalysisResult
			res, err = driver.AnalyzeFile(path, opts)
			results = []*driver.AnalysisResult{res}
		}
		if err != nil {
			return err
		}
	}

	return renderScanResults(cmd, results, format)
}

func scanDir(cmd *cobra.Command, dir string, opts driver.Options, cfg config.Config) ([]*driver.AnalysisResult, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	dirOpts := driver.DirOptions{Options: opts, Jobs: jobs}

	cacheFlag, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache flag: %w", err)
	}
	// an explicit flag wins over the manifest
	cacheOn := cfg.Cache.Enabled
	if cmd.Flags().Changed("cache") {
		cacheOn = cacheFlag
	}
	if cacheOn {
		cache, cacheErr := openCache(cfg)
		if cacheErr != nil {
			return nil, cacheErr
		}
		if drop, _ := cmd.Flags().GetBool("drop-cache"); drop {
			if dropErr := cache.DropAll(); dropErr != nil {
				return nil, dropErr
			}
			// DropAll removes the directory, reopen to recreate it
			cache, cacheErr = openCache(cfg)
			if cacheErr != nil {
				return nil, cacheErr
			}
		}
		dirOpts.Cache = cache
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return nil, err
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		mode = uiModeOff
	}

	if shouldUseTUI(mode) {
		return runScanWithUI(cmd.Context(), "scanning "+dir, dir, dirOpts)
	}
	return driver.AnalyzeDir(cmd.Context(), dir, dirOpts)
}

func openCache(cfg config.Config) (*driver.ReportCache, error) {
	if cfg.Cache.Dir != "" {
		return driver.OpenReportCacheAt(cfg.Cache.Dir)
	}
	return driver.OpenReportCache("cvet")
}

func renderScanResults(cmd *cobra.Command, results []*driver.AnalysisResult, format string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	colored := useColor(cmd, os.Stderr)
	prettyOpts := diagfmt.PrettyOpts{Color: colored, Context: 2}
	for _, res := range results {
		if res.Bag.Len() > 0 && !quiet && res.FileSet != nil {
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, prettyOpts)
		}
	}

	unsafe := 0
	for _, res := range results {
		if res.Report != nil && !res.Report.OverallSafe {
			unsafe++
		}
	}

	switch format {
	case "json":
		reports := make([]diagfmt.ReportJSON, 0, len(results))
		for _, res := range results {
			if res.Report == nil {
				continue
			}
			reports = append(reports, diagfmt.BuildReportJSON(res.Path, res.Report))
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(reports); err != nil {
			return err
		}
	default:
		stdoutColor := useColor(cmd, os.Stdout)
		for _, res := range results {
			if res.Report == nil {
				fmt.Fprintf(os.Stdout, "%s: could not be analyzed\n", res.Path)
				continue
			}
			if err := diagfmt.FormatReportPretty(os.Stdout, res.Report, stdoutColor); err != nil {
				return err
			}
		}
	}

	if timings {
		for _, res := range results {
			printStageTimings(os.Stderr, res.Path, res.Timing)
		}
	}

	if unsafe > 0 {
		return fmt.Errorf("found issues in %d of %d input(s)", unsafe, len(results))
	}
	return nil
}
