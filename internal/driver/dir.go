package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"cvet/internal/diag"
	"cvet/internal/pipeline"
	"cvet/internal/source"
)

// DirOptions configures a directory scan.
type DirOptions struct {
	Options
	// Jobs bounds parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Sink receives per-file progress events; nil disables them.
	Sink pipeline.ProgressSink
	// Cache, when set, skips re-analysis of files whose content hash has a
	// stored report.
	Cache *ReportCache
}

// ListCFiles returns every *.c and *.h file under dir, sorted for
// deterministic output order.
func ListCFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".c") || strings.HasSuffix(path, ".h") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir analyzes every C file under dir in parallel. Results come back
// in path order regardless of completion order. Per-file problems (unreadable
// file, syntax errors) land in that file's result; the returned error covers
// only directory walking and cancellation.
func AnalyzeDir(ctx context.Context, dir string, opts DirOptions) ([]*AnalysisResult, error) {
	files, err := ListCFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	sink := opts.Sink
	if sink == nil {
		sink = pipeline.NopSink{}
	}
	for _, path := range files {
		sink.OnEvent(pipeline.Event{File: path, Status: pipeline.StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*AnalysisResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageLex, Status: pipeline.StatusWorking})
			start := time.Now()

			res, err := analyzeCached(path, opts)
			if err != nil {
				res = ioFailureResult(path, err, opts.Options)
				results[i] = res
				sink.OnEvent(pipeline.Event{
					File: path, Status: pipeline.StatusError,
					Err: err, Elapsed: time.Since(start),
				})
				return nil
			}

			results[i] = res
			sink.OnEvent(pipeline.Event{
				File: path, Stage: pipeline.StageReport, Status: pipeline.StatusDone,
				Findings: len(res.Findings), Elapsed: time.Since(start),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// analyzeCached consults the report cache before running the pipeline. A
// cached result carries the report and findings only; token and tree dumps
// always re-analyze.
func analyzeCached(path string, opts DirOptions) (*AnalysisResult, error) {
	if opts.Cache == nil {
		return AnalyzeFile(path, opts.Options)
	}

	fset := source.NewFileSet()
	fileID, err := fset.Load(path)
	if err != nil {
		return nil, err
	}
	file := fset.Get(fileID)

	if cached, ok, err := opts.Cache.Get(file.Hash); err == nil && ok {
		return &AnalysisResult{
			Path:     path,
			FileSet:  fset,
			File:     file,
			Bag:      diag.NewBag(opts.maxDiagnostics()),
			Findings: cached.Findings,
			Report:   cached.Report(),
			Timing:   &pipeline.Timings{},
		}, nil
	}

	res := analyze(fset, file, path, opts.Options)
	// best effort; a failed write only costs the next run a re-analysis
	_ = opts.Cache.Put(file.Hash, res)
	return res, nil
}

// ioFailureResult wraps an unreadable file as a normal result so one bad
// path does not abort a whole scan.
func ioFailureResult(path string, err error, opts Options) *AnalysisResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOReadFailure,
		Message:  "failed to load file: " + err.Error(),
	})
	return &AnalysisResult{
		Path:   path,
		Bag:    bag,
		Timing: &pipeline.Timings{},
	}
}
