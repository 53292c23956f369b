package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cvet/internal/diag"
	"cvet/internal/diagfmt"
	"cvet/internal/lexer"
	"cvet/internal/parser"
	"cvet/internal/report"
	"cvet/internal/rules"
	"cvet/internal/source"
	"cvet/internal/token"
)

func newBag(fs *source.FileSet, file source.FileID, start, end uint32) *diag.Bag {
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: file, Start: start, End: end},
	})
	return bag
}

func TestPrettyDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.c", []byte("int x = 1;\n"))
	bag := newBag(fs, id, 4, 5) // the "x"

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	out := buf.String()

	if !strings.Contains(out, "t.c:1:5: ERROR SYN2001: unexpected token") {
		t.Fatalf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "    1 | int x = 1;") {
		t.Fatalf("source line missing:\n%s", out)
	}
	// caret under column 5
	if !strings.Contains(out, "      |     ^") {
		t.Fatalf("caret misplaced:\n%s", out)
	}
}

func TestPrettyUnderlinesSpanWidth(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.c", []byte("strcpy(buf, input);\n"))
	bag := newBag(fs, id, 0, 6) // the "strcpy"

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	if !strings.Contains(buf.String(), "^~~~~~") {
		t.Fatalf("underline missing:\n%s", buf.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.c", []byte("int x;\nint y;\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.SynExpectSemicolon,
		Message:  "missing ';'",
		Primary:  source.Span{File: id, Start: 0, End: 3},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 7, End: 10}, Msg: "next declaration starts here"},
		},
	})

	var withNotes, withoutNotes bytes.Buffer
	diagfmt.Pretty(&withNotes, bag, fs, diagfmt.PrettyOpts{ShowNotes: true})
	diagfmt.Pretty(&withoutNotes, bag, fs, diagfmt.PrettyOpts{})

	if !strings.Contains(withNotes.String(), "note: next declaration starts here") {
		t.Fatalf("note missing:\n%s", withNotes.String())
	}
	if strings.Contains(withoutNotes.String(), "note:") {
		t.Fatalf("note shown despite ShowNotes=false:\n%s", withoutNotes.String())
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.c", []byte("int x = 1;\n"))
	bag := newBag(fs, id, 4, 5)

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2001" || d.Severity != "ERROR" {
		t.Fatalf("diagnostic = %+v", d)
	}
	if d.Location.File != "t.c" || d.Location.StartLine != 1 || d.Location.StartCol != 5 {
		t.Fatalf("location = %+v", d.Location)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.c", []byte("int x;\n"))
	bag := diag.NewBag(8)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynUnexpectedToken,
			Message:  "boom",
			Primary:  source.Span{File: id, Start: i, End: i + 1},
		})
	}

	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2", out.Count)
	}
	if bag.Len() != 3 {
		t.Fatal("Max must not mutate the bag")
	}
}

func scan(t *testing.T, src string) (*source.FileSet, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.c", []byte(src))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return fs, tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs, tokens := scan(t, "int x;\n")
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"KwInt", `"x"`, "Semicolon", "at 1:1-1:4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, tokens := scan(t, "int x;\n")
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("tokens = %d, want 3", len(out))
	}
	if out[1].Kind != "Ident" || out[1].Text != "x" || out[1].Line != 1 {
		t.Fatalf("token = %+v", out[1])
	}
}

func parseTree(t *testing.T, src string) *parser.Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.c", []byte(src))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	res := parser.Parse(file, lx, parser.Options{})
	return &res
}

func TestFormatTreePretty(t *testing.T) {
	res := parseTree(t, "int main() {\n    return 0;\n}\n")
	var buf bytes.Buffer
	if err := diagfmt.FormatTreePretty(&buf, res.Tree); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Program") {
		t.Fatalf("root missing:\n%s", out)
	}
	if !strings.Contains(out, "  FunctionDecl \"main\" [lines 1-3]") {
		t.Fatalf("function line missing:\n%s", out)
	}
	if !strings.Contains(out, "    Block") {
		t.Fatalf("block not indented under function:\n%s", out)
	}
}

func TestFormatTreeJSON(t *testing.T) {
	res := parseTree(t, "int main() { return 0; }\n")
	var buf bytes.Buffer
	if err := diagfmt.FormatTreeJSON(&buf, res.Tree); err != nil {
		t.Fatal(err)
	}
	var root diagfmt.TreeNodeJSON
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if root.Kind != "Program" || len(root.Children) != 1 {
		t.Fatalf("root = %+v", root)
	}
	if root.Children[0].Kind != "FunctionDecl" || root.Children[0].Text != "main" {
		t.Fatalf("child = %+v", root.Children[0])
	}
}

func TestFormatTreeDOT(t *testing.T) {
	res := parseTree(t, "int x;\n")
	var buf bytes.Buffer
	if err := diagfmt.FormatTreeDOT(&buf, res.Tree); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "digraph ParseTree {") {
		t.Fatalf("not a DOT document:\n%s", buf.String())
	}
}

func TestFormatReportPretty(t *testing.T) {
	findings := []rules.Finding{
		{RuleID: "unsafe-function", Severity: rules.SevCritical, Line: 3, Message: "Use of unsafe function `strcpy()`"},
	}
	rep := report.Aggregate(findings, report.Meta{Path: "t.c"})

	var buf bytes.Buffer
	if err := diagfmt.FormatReportPretty(&buf, rep, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "1 issue(s) found in t.c") {
		t.Fatalf("summary missing:\n%s", out)
	}
	if !strings.Contains(out, "  Critical: Use of unsafe function `strcpy()` (line 3)") {
		t.Fatalf("finding line missing:\n%s", out)
	}
}

func TestFormatReportJSON(t *testing.T) {
	findings := []rules.Finding{
		{RuleID: "hardcoded-secret", Severity: rules.SevWarning, Line: 2, Message: "Hardcoded secret", Suggestion: "Load secrets from the environment."},
	}
	rep := report.Aggregate(findings, report.Meta{Path: "t.c"})

	var buf bytes.Buffer
	if err := diagfmt.FormatReportJSON(&buf, "t.c", rep); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.ReportJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.OverallSafe || out.Path != "t.c" || len(out.Findings) != 1 {
		t.Fatalf("report = %+v", out)
	}
	if out.Findings[0].Severity != "Warning" || out.Findings[0].Suggestion == "" {
		t.Fatalf("finding = %+v", out.Findings[0])
	}
}
