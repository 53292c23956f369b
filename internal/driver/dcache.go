package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"cvet/internal/report"
	"cvet/internal/rules"
)

// Bump when reportEntry changes shape; stale entries are treated as misses.
const reportCacheSchema uint16 = 1

// ReportCache stores per-file analysis verdicts on disk, keyed by the
// SHA-256 of the file content. Safe for concurrent use. A nil cache is a
// valid cache that never hits.
type ReportCache struct {
	mu  sync.RWMutex
	dir string
}

// reportEntry is the serialized form of one cached analysis outcome. Tokens
// and the parse tree are not cached: they are cheap to rebuild and only the
// verdict survives across runs.
type reportEntry struct {
	Schema      uint16
	Findings    []rules.Finding
	OverallSafe bool
	Messages    []string
}

// OpenReportCache initializes a cache under XDG_CACHE_HOME (or ~/.cache)
// in a subdirectory named after app.
func OpenReportCache(app string) (*ReportCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenReportCacheAt(filepath.Join(base, app))
}

// OpenReportCacheAt initializes a cache rooted at dir.
func OpenReportCacheAt(dir string) (*ReportCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ReportCache{dir: dir}, nil
}

func (c *ReportCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "reports", hex.EncodeToString(key[:])+".mp")
}

// Put stores the verdict of res under key, replacing any previous entry
// atomically.
func (c *ReportCache) Put(key [32]byte, res *AnalysisResult) error {
	if c == nil || res.Report == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &reportEntry{
		Schema:      reportCacheSchema,
		Findings:    res.Findings,
		OverallSafe: res.Report.OverallSafe,
		Messages:    res.Report.Messages,
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// CachedReport is a Get hit: the findings and report of a previous run.
type CachedReport struct {
	Findings []rules.Finding
	entry    *reportEntry
}

// Report rebuilds the report.Report from the cached entry.
func (cr *CachedReport) Report() *report.Report {
	return &report.Report{
		Findings:    cr.entry.Findings,
		OverallSafe: cr.entry.OverallSafe,
		Messages:    cr.entry.Messages,
	}
}

// Get looks up key. A missing or schema-mismatched entry is (nil, false, nil);
// only real I/O or decode trouble surfaces as an error.
func (c *ReportCache) Get(key [32]byte) (*CachedReport, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var entry reportEntry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return nil, false, err
	}
	if entry.Schema != reportCacheSchema {
		return nil, false, nil
	}
	return &CachedReport{Findings: entry.Findings, entry: &entry}, true, nil
}

// DropAll invalidates everything, useful after a schema bump or on demand.
func (c *ReportCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
