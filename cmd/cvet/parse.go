package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cvet/internal/diagfmt"
	"cvet/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.c",
	Short: "Parse a C source file and output its parse tree",
	Long:  `Parse builds the parse tree of a C source file, recovering from syntax errors where possible`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|dot)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	opts, _, err := analysisOptions(cmd, filePath)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		prettyOpts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(os.Stdout, result.Tree)
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Tree)
	case "dot":
		return diagfmt.FormatTreeDOT(os.Stdout, result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
