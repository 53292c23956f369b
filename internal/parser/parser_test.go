package parser_test

import (
	"strings"
	"testing"

	"cvet/internal/ast"
	"cvet/internal/diag"
	"cvet/internal/lexer"
	"cvet/internal/parser"
	"cvet/internal/source"
)

func parseSnippet(t *testing.T, input string, opts parser.Options) (*ast.Tree, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.c", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(256)
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	if opts.Reporter == nil {
		opts.Reporter = &diag.BagReporter{Bag: bag}
	}
	res := parser.Parse(file, lx, opts)
	if res.Tree == nil {
		t.Fatal("Parse returned nil tree")
	}
	return res.Tree, bag
}

func findAll(tree *ast.Tree, kind ast.NodeKind) []ast.NodeID {
	var out []ast.NodeID
	tree.Walk(tree.Root(), func(id ast.NodeID, n *ast.Node) bool {
		if n.Kind == kind {
			out = append(out, id)
		}
		return true
	})
	return out
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func countCode(bag *diag.Bag, code diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}

func TestParseSimpleFunction(t *testing.T) {
	tree, bag := parseSnippet(t, `
int main(void) {
	int x = 1;
	if (x > 0) {
		return x;
	}
	return 0;
}
`, parser.Options{})

	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	root := tree.Get(tree.Root())
	if root.Kind != ast.KindProgram {
		t.Fatalf("root kind = %v, want Program", root.Kind)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}

	fn := tree.Get(root.Children[0])
	if fn.Kind != ast.KindFunctionDecl || fn.Text != "main" {
		t.Fatalf("first child = %v %q, want FunctionDecl main", fn.Kind, fn.Text)
	}
	if len(fn.Children) != 2 {
		t.Fatalf("function children = %d, want ParamList and Block", len(fn.Children))
	}
	if tree.Get(fn.Children[0]).Kind != ast.KindParamList {
		t.Errorf("fn.Children[0] = %v, want ParamList", tree.Get(fn.Children[0]).Kind)
	}

	blk := tree.Get(fn.Children[1])
	if blk.Kind != ast.KindBlock {
		t.Fatalf("fn.Children[1] = %v, want Block", blk.Kind)
	}
	wantStmts := []ast.NodeKind{ast.KindVarDecl, ast.KindIfStmt, ast.KindReturnStmt}
	if len(blk.Children) != len(wantStmts) {
		t.Fatalf("block stmts = %d, want %d", len(blk.Children), len(wantStmts))
	}
	for i, want := range wantStmts {
		if got := tree.Get(blk.Children[i]).Kind; got != want {
			t.Errorf("stmt[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestParseCallArguments(t *testing.T) {
	tree, bag := parseSnippet(t, `
void f(char *buf, char *src) {
	strcpy(buf, src);
	printf("%d\n", 1 + 2 * 3);
}
`, parser.Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	calls := findAll(tree, ast.KindCallExpr)
	if len(calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(calls))
	}

	strcpyCall := tree.Get(calls[0])
	if strcpyCall.Text != "strcpy" {
		t.Errorf("call[0].Text = %q, want strcpy", strcpyCall.Text)
	}
	if len(strcpyCall.Children) != 2 {
		t.Errorf("strcpy args = %d, want 2", len(strcpyCall.Children))
	}
	if strcpyCall.StartLine != 3 {
		t.Errorf("strcpy StartLine = %d, want 3", strcpyCall.StartLine)
	}

	printfCall := tree.Get(calls[1])
	if printfCall.Text != "printf" {
		t.Errorf("call[1].Text = %q, want printf", printfCall.Text)
	}
	// 1 + 2 * 3 must bind as 1 + (2 * 3)
	arg := tree.Get(printfCall.Children[1])
	if arg.Kind != ast.KindBinaryExpr || arg.Text != "+" {
		t.Fatalf("printf arg[1] = %v %q, want BinaryExpr +", arg.Kind, arg.Text)
	}
	right := tree.Get(arg.Children[1])
	if right.Kind != ast.KindBinaryExpr || right.Text != "*" {
		t.Errorf("rhs of + = %v %q, want BinaryExpr *", right.Kind, right.Text)
	}
}

func TestParseGlobalsAndPrototypes(t *testing.T) {
	tree, bag := parseSnippet(t, `
#include <stdio.h>
int limit = 10, count;
char buffer[64];
int helper(int a, int b);
`, parser.Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	decls := findAll(tree, ast.KindVarDecl)
	names := map[string]bool{}
	for _, id := range decls {
		names[tree.Get(id).Text] = true
	}
	for _, want := range []string{"limit", "count", "buffer", "a", "b"} {
		if !names[want] {
			t.Errorf("missing VarDecl %q, have %v", want, names)
		}
	}
	fns := findAll(tree, ast.KindFunctionDecl)
	if len(fns) != 1 || tree.Get(fns[0]).Text != "helper" {
		t.Fatalf("expected prototype FunctionDecl helper, got %d", len(fns))
	}
}

func TestParseAssignmentStatement(t *testing.T) {
	tree, bag := parseSnippet(t, `
void f(void) {
	int x;
	x = 1;
	x += 2;
}
`, parser.Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	assigns := findAll(tree, ast.KindAssignment)
	if len(assigns) != 2 {
		t.Fatalf("assignments = %d, want 2", len(assigns))
	}
	if got := tree.Get(assigns[0]).Text; got != "=" {
		t.Errorf("assign[0] op = %q, want =", got)
	}
	if got := tree.Get(assigns[1]).Text; got != "+=" {
		t.Errorf("assign[1] op = %q, want +=", got)
	}
}

func TestParseMissingSemicolonRecovers(t *testing.T) {
	tree, bag := parseSnippet(t, `
void f(void) {
	int x = 1
	return;
}
`, parser.Options{})

	if !hasCode(bag, diag.SynExpectSemicolon) {
		t.Fatalf("want SynExpectSemicolon, got %+v", bag.Items())
	}
	// the parser must still see the rest of the function
	if n := len(findAll(tree, ast.KindReturnStmt)); n != 1 {
		t.Errorf("ReturnStmt count = %d, want 1 after recovery", n)
	}
}

func TestParseGarbageTopLevel(t *testing.T) {
	tree, bag := parseSnippet(t, `
@@@ ;
int ok(void) { return 1; }
`, parser.Options{})

	if !hasCode(bag, diag.SynUnexpectedToken) {
		t.Fatalf("want SynUnexpectedToken, got %+v", bag.Items())
	}
	if n := len(findAll(tree, ast.KindErrorNode)); n == 0 {
		t.Error("want at least one ErrorNode covering the garbage")
	}
	fns := findAll(tree, ast.KindFunctionDecl)
	if len(fns) != 1 || tree.Get(fns[0]).Text != "ok" {
		t.Fatalf("recovery lost the following function: %d found", len(fns))
	}
}

func TestParseUnclosedBrace(t *testing.T) {
	tree, bag := parseSnippet(t, `
void f(void) {
	return;
`, parser.Options{})

	if !hasCode(bag, diag.SynUnclosedBrace) {
		t.Fatalf("want SynUnclosedBrace, got %+v", bag.Items())
	}
	if tree.Get(tree.Root()).Kind != ast.KindProgram {
		t.Fatal("tree lost its Program root")
	}
	if n := len(findAll(tree, ast.KindReturnStmt)); n != 1 {
		t.Errorf("ReturnStmt count = %d, want 1", n)
	}
}

func TestParseDepthLimit(t *testing.T) {
	input := "int f(void) { return " + strings.Repeat("(", 64) + "1" +
		strings.Repeat(")", 64) + "; }\n"
	tree, bag := parseSnippet(t, input, parser.Options{MaxDepth: 16})

	if got := countCode(bag, diag.SynComplexityLimit); got != 1 {
		t.Fatalf("SynComplexityLimit count = %d, want exactly 1\nall: %+v", got, bag.Items())
	}
	if n := len(findAll(tree, ast.KindErrorNode)); n == 0 {
		t.Error("want an ErrorNode covering the unconsumed input")
	}
}

func TestParseTokenLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("void f(void) {\n")
	for i := 0; i < 200; i++ {
		sb.WriteString("\tx = x + 1;\n")
	}
	sb.WriteString("}\n")
	tree, bag := parseSnippet(t, sb.String(), parser.Options{MaxTokens: 50})

	if got := countCode(bag, diag.SynComplexityLimit); got != 1 {
		t.Fatalf("SynComplexityLimit count = %d, want exactly 1", got)
	}
	if tree.Get(tree.Root()).Kind != ast.KindProgram {
		t.Fatal("tree lost its Program root")
	}
}

func TestParseLoops(t *testing.T) {
	tree, bag := parseSnippet(t, `
void f(int n) {
	int i;
	for (i = 0; i < n; i++) {
		while (n > 0) {
			n--;
		}
	}
	do {
		n++;
	} while (n < 10);
}
`, parser.Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if n := len(findAll(tree, ast.KindForStmt)); n != 1 {
		t.Errorf("ForStmt = %d, want 1", n)
	}
	whiles := findAll(tree, ast.KindWhileStmt)
	if len(whiles) != 2 {
		t.Fatalf("WhileStmt = %d, want 2 (while and do-while)", len(whiles))
	}
	if got := tree.Get(whiles[1]).Text; got != "do" {
		t.Errorf("second loop Text = %q, want do", got)
	}
}

func TestParseStatementLines(t *testing.T) {
	tree, bag := parseSnippet(t, "int g;\n\nint f(void) {\n\treturn g;\n}\n", parser.Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	rets := findAll(tree, ast.KindReturnStmt)
	if len(rets) != 1 {
		t.Fatalf("ReturnStmt = %d, want 1", len(rets))
	}
	if got := tree.Get(rets[0]).StartLine; got != 4 {
		t.Errorf("return StartLine = %d, want 4", got)
	}
	fns := findAll(tree, ast.KindFunctionDecl)
	fn := tree.Get(fns[0])
	if fn.StartLine != 3 || fn.EndLine != 5 {
		t.Errorf("function lines = [%d, %d], want [3, 5]", fn.StartLine, fn.EndLine)
	}
}

func TestParseDeterministic(t *testing.T) {
	input := `
int x = 1
void f(void) {
	if (x) { broken(
}
`
	flatten := func(tree *ast.Tree) []ast.NodeKind {
		var out []ast.NodeKind
		tree.Walk(tree.Root(), func(_ ast.NodeID, n *ast.Node) bool {
			out = append(out, n.Kind)
			return true
		})
		return out
	}

	treeA, bagA := parseSnippet(t, input, parser.Options{})
	treeB, bagB := parseSnippet(t, input, parser.Options{})

	a, b := flatten(treeA), flatten(treeB)
	if len(a) != len(b) {
		t.Fatalf("node counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("node[%d] differs: %v vs %v", i, a[i], b[i])
		}
	}
	if bagA.Len() != bagB.Len() {
		t.Fatalf("diag counts differ: %d vs %d", bagA.Len(), bagB.Len())
	}
}

func TestParseMaxErrorsBudget(t *testing.T) {
	input := strings.Repeat("@ ;\n", 20)
	_, bag := parseSnippet(t, input, parser.Options{MaxErrors: 3})

	syntax := 0
	for _, d := range bag.Items() {
		if d.Code.ID()[:3] == "SYN" {
			syntax++
		}
	}
	if syntax > 3 {
		t.Fatalf("syntax diagnostics = %d, want at most 3", syntax)
	}
}
