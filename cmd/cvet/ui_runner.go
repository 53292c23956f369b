package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cvet/internal/driver"
	"cvet/internal/pipeline"
	"cvet/internal/ui"
)

type scanOutcome struct {
	results []*driver.AnalysisResult
	err     error
}

// runScanWithUI runs a directory scan while a Bubble Tea program renders the
// per-file progress. The scan result wins over UI errors so findings are
// never lost to a rendering problem.
func runScanWithUI(ctx context.Context, title, dir string, opts driver.DirOptions) ([]*driver.AnalysisResult, error) {
	files, err := driver.ListCFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = pipeline.ChannelSink{Ch: events}
		results, scanErr := driver.AnalyzeDir(ctx, dir, optsCopy)
		outcomeCh <- scanOutcome{results: results, err: scanErr}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if outcome.err != nil {
		return outcome.results, outcome.err
	}
	return outcome.results, uiErr
}
