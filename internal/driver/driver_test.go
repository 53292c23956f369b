package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"cvet/internal/pipeline"
	"cvet/internal/rules"
	"cvet/internal/token"
)

const vulnerable = "int main() {\n" +
	"    char buf[10];\n" +
	"    strcpy(buf, input);\n" +
	"    return 0;\n" +
	"}\n"

func TestAnalyzeSourceEndToEnd(t *testing.T) {
	res := AnalyzeSource("test.c", []byte(vulnerable), Options{})

	if res.Tree == nil || res.Tree.Len() == 0 {
		t.Fatal("no parse tree")
	}
	if len(res.Tokens) == 0 {
		t.Fatal("no tokens")
	}
	if len(res.Findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(res.Findings))
	}
	f := res.Findings[0]
	if f.RuleID != "unsafe-function" || f.Severity != rules.SevCritical || f.Line != 3 {
		t.Fatalf("unexpected finding %+v", f)
	}
	if res.Report == nil || res.Report.OverallSafe {
		t.Fatalf("report = %+v, want unsafe verdict", res.Report)
	}
	if len(res.Report.Messages) != 2 {
		t.Fatalf("messages = %v, want summary plus one finding", res.Report.Messages)
	}
}

func TestAnalyzeSourceNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"@@@ $$$ ###",
		"int main( {",
		"\"unterminated",
		"int main() { return 0; }",
	}
	for _, src := range inputs {
		res := AnalyzeSource("junk.c", []byte(src), Options{})
		if res == nil || res.Report == nil {
			t.Fatalf("no result for %q", src)
		}
	}
}

func TestAnalyzeSourceCleanInput(t *testing.T) {
	src := "int add(int a, int b) {\n    return a + b;\n}\n"
	res := AnalyzeSource("clean.c", []byte(src), Options{})
	if len(res.Findings) != 0 {
		t.Fatalf("findings = %+v, want none", res.Findings)
	}
	if !res.Report.OverallSafe {
		t.Fatal("clean input not marked safe")
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("diagnostics = %+v, want none", res.Bag.Items())
	}
}

func TestAnalyzeSourceCountsSyntaxErrorsOnce(t *testing.T) {
	// one missing semicolon must yield one diagnostic even though the
	// driver runs two lexer passes
	res := AnalyzeSource("once.c", []byte("int main() {\n    int x = 1\n    return 0;\n}\n"), Options{})
	if res.Bag.Len() != 1 {
		t.Fatalf("diagnostics = %+v, want exactly one", res.Bag.Items())
	}
}

func TestAnalyzeFileMissing(t *testing.T) {
	if _, err := AnalyzeFile(filepath.Join(t.TempDir(), "nope.c"), Options{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTokenizeSourceKeepsComments(t *testing.T) {
	res := TokenizeSource("c.c", []byte("// note\nint x;\n"), 0)
	found := false
	for _, tok := range res.Tokens {
		if tok.Kind == token.Comment {
			found = true
		}
	}
	if !found {
		t.Fatalf("no comment token in %+v", res.Tokens)
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

type recordSink struct {
	mu     sync.Mutex
	events []pipeline.Event
}

func (s *recordSink) OnEvent(evt pipeline.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func TestAnalyzeDirSortedResults(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.c":        vulnerable,
		"a.c":        "int x = 1;\n",
		"sub/deep.c": "int y = 2;\n",
		"notes.txt":  "skip me",
	})

	sink := &recordSink{}
	results, err := AnalyzeDir(context.Background(), dir, DirOptions{Sink: sink})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	want := []string{"a.c", "b.c", filepath.Join("sub", "deep.c")}
	for i, res := range results {
		if res.Path != filepath.Join(dir, want[i]) {
			t.Fatalf("results[%d].Path = %q, want %q", i, res.Path, want[i])
		}
	}
	if len(results[1].Findings) != 1 {
		t.Fatalf("b.c findings = %+v, want one", results[1].Findings)
	}

	done := 0
	for _, evt := range sink.events {
		if evt.Status == pipeline.StatusDone {
			done++
		}
	}
	if done != 3 {
		t.Fatalf("done events = %d, want 3", done)
	}
}

func TestAnalyzeDirEmpty(t *testing.T) {
	results, err := AnalyzeDir(context.Background(), t.TempDir(), DirOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if results != nil {
		t.Fatalf("results = %+v, want nil", results)
	}
}

func TestAnalyzeDirCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "int x;\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := AnalyzeDir(ctx, dir, DirOptions{Jobs: 1}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestReportCacheRoundtrip(t *testing.T) {
	cache, err := OpenReportCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	res := AnalyzeSource("test.c", []byte(vulnerable), Options{})
	key := res.File.Hash

	if _, ok, err := cache.Get(key); err != nil || ok {
		t.Fatalf("Get before Put: ok=%v err=%v", ok, err)
	}
	if err := cache.Put(key, res); err != nil {
		t.Fatal(err)
	}

	cached, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if len(cached.Findings) != 1 || cached.Findings[0].RuleID != "unsafe-function" {
		t.Fatalf("cached findings = %+v", cached.Findings)
	}
	rep := cached.Report()
	if rep.OverallSafe || len(rep.Messages) != len(res.Report.Messages) {
		t.Fatalf("cached report = %+v", rep)
	}
}

func TestReportCacheNilIsNoop(t *testing.T) {
	var cache *ReportCache
	var key [32]byte
	if err := cache.Put(key, &AnalysisResult{}); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := cache.Get(key); err != nil || ok {
		t.Fatalf("nil cache hit: ok=%v err=%v", ok, err)
	}
}

func TestAnalyzeDirUsesCache(t *testing.T) {
	cache, err := OpenReportCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := writeFiles(t, map[string]string{"a.c": vulnerable})

	first, err := AnalyzeDir(context.Background(), dir, DirOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	second, err := AnalyzeDir(context.Background(), dir, DirOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}

	// the cached run skips tokenization but must keep the verdict
	if second[0].Tree != nil {
		t.Fatal("cached result re-parsed the file")
	}
	if len(second[0].Findings) != len(first[0].Findings) {
		t.Fatalf("cached findings = %+v, want %+v", second[0].Findings, first[0].Findings)
	}
	if second[0].Report.OverallSafe != first[0].Report.OverallSafe {
		t.Fatal("cached verdict differs")
	}
}

func TestAnalyzeSourceDeterministic(t *testing.T) {
	a := AnalyzeSource("d.c", []byte(vulnerable), Options{})
	b := AnalyzeSource("d.c", []byte(vulnerable), Options{})
	if len(a.Findings) != len(b.Findings) || len(a.Report.Messages) != len(b.Report.Messages) {
		t.Fatal("repeated analysis differs")
	}
	for i := range a.Report.Messages {
		if a.Report.Messages[i] != b.Report.Messages[i] {
			t.Fatalf("message %d differs: %q vs %q", i, a.Report.Messages[i], b.Report.Messages[i])
		}
	}
}
