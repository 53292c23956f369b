// Package pipeline defines the progress vocabulary shared by the driver and
// the terminal UI: stages, statuses, events, and per-stage timings.
package pipeline

import "time"

// Stage describes one analysis phase.
type Stage string

const (
	// StageLex is tokenization.
	StageLex Stage = "lex"
	// StageParse is tree construction.
	StageParse Stage = "parse"
	// StageRules is rule evaluation.
	StageRules Stage = "rules"
	// StageReport is aggregation.
	StageReport Stage = "report"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being analyzed.
	StatusWorking Status = "working"
	// StatusDone indicates analysis finished.
	StatusDone Status = "done"
	// StatusError indicates the file could not be analyzed.
	StatusError Status = "error"
)

// Event reports progress for one file (or the whole scan when File is
// empty).
type Event struct {
	File     string
	Stage    Stage
	Status   Status
	Err      error
	Findings int
	Elapsed  time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent OnEvent calls; the driver analyzes files in parallel.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds per-stage durations for one analysis.
type Timings struct {
	stages map[Stage]time.Duration
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
	t.stages[stage] = dur
}

// Duration returns the recorded duration for stage, or zero.
func (t *Timings) Duration(stage Stage) time.Duration {
	if t == nil || t.stages == nil {
		return 0
	}
	return t.stages[stage]
}

// Total sums every recorded stage.
func (t *Timings) Total() time.Duration {
	if t == nil {
		return 0
	}
	var total time.Duration
	for _, d := range t.stages {
		total += d
	}
	return total
}
