package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"cvet/internal/diag"
	"cvet/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// in order (call bag.Sort() first). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline for the primary span and
// optional context lines around it.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	if file == nil {
		fmt.Fprintf(w, "%s %s: %s\n", paintSeverity(d.Severity, opts.Color), d.Code.ID(), d.Message)
		return
	}

	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file.Path, opts.PathMode),
		start.Line, start.Col,
		paintSeverity(d.Severity, opts.Color),
		d.Code.ID(),
		d.Message,
	)
	printSpanContext(w, file, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
				displayPath(file.Path, opts.PathMode),
				noteStart.Line, noteStart.Col, note.Msg)
		}
	}
}

// printSpanContext shows the primary line with carets, plus up to
// opts.Context surrounding lines for orientation.
func printSpanContext(w io.Writer, file *source.File, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(span)
	firstLine := start.Line
	lastLine := firstLine
	if opts.Context > 0 {
		if ctx := uint32(opts.Context); firstLine > ctx {
			firstLine -= ctx
		} else {
			firstLine = 1
		}
		lastLine = start.Line + uint32(opts.Context)
	}

	for line := firstLine; line <= lastLine; line++ {
		text := file.GetLine(line)
		if text == "" && line != start.Line {
			continue
		}
		fmt.Fprintf(w, "%5d | %s\n", line, text)
		if line == start.Line {
			fmt.Fprintf(w, "      | %s\n", caretLine(start, end, text, opts.Color))
		}
	}
}

// caretLine builds the ^~~~ underline for a span on its first line. Tabs in
// the source line are mirrored so the carets stay aligned.
func caretLine(start, end source.LineCol, text string, colored bool) string {
	var sb strings.Builder
	col := uint32(1)
	for _, r := range text {
		if col >= start.Col {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		col++
	}

	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	marks := "^" + strings.Repeat("~", int(width-1))
	if colored {
		marks = color.New(color.FgHiGreen, color.Bold).Sprint(marks)
	}
	sb.WriteString(marks)
	return sb.String()
}

func paintSeverity(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}

func displayPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}
