// Package diagfmt renders diagnostics, token streams, parse trees, and
// analysis reports for the terminal and for machine consumption.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows the path as loaded.
	PathModeAuto PathMode = iota
	// PathModeBasename shows only the final path element.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int8 // source lines shown around the primary span
	PathMode PathMode
	// ShowNotes includes secondary notes under each diagnostic.
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col to every location
	PathMode         PathMode
	Max              int // truncates output, not the bag
	IncludeNotes     bool
}
