package diag

import (
	"testing"

	"cvet/internal/source"
)

func d(sev Severity, code Code, start uint32) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  code.String(),
		Primary:  source.Span{File: 0, Start: start, End: start + 1},
	}
}

func TestBagCapDropsOverflow(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(d(SevError, SynUnexpectedToken, 0)) {
		t.Fatal("first Add rejected")
	}
	if !bag.Add(d(SevError, SynUnexpectedToken, 5)) {
		t.Fatal("second Add rejected")
	}
	if bag.Add(d(SevError, SynUnexpectedToken, 9)) {
		t.Fatal("Add past cap accepted")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(10)
	bag.Add(d(SevInfo, LexInfo, 0))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("info-only bag reports errors/warnings")
	}

	bag.Add(d(SevWarning, SynExpectSemicolon, 3))
	if bag.HasErrors() {
		t.Fatal("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Fatal("warning not detected")
	}

	bag.Add(d(SevError, SynUnclosedBrace, 7))
	if !bag.HasErrors() {
		t.Fatal("error not detected")
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	bag := NewBag(10)
	bag.Add(d(SevWarning, SynExpectSemicolon, 20))
	bag.Add(d(SevError, SynUnclosedBrace, 5))
	bag.Add(d(SevError, SynUnexpectedToken, 5))

	bag.Sort()
	items := bag.Items()
	if items[0].Primary.Start != 5 || items[1].Primary.Start != 5 || items[2].Primary.Start != 20 {
		t.Fatalf("sort order by start broken: %+v", items)
	}
	// same span: lower code first
	if items[0].Code != SynUnexpectedToken {
		t.Fatalf("tie-break by code broken: got %v first", items[0].Code)
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(d(SevError, SynUnclosedBrace, 0))
	b := NewBag(2)
	b.Add(d(SevWarning, SynExpectSemicolon, 1))
	b.Add(d(SevInfo, SynInfo, 2))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merged Len = %d, want 3", a.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{RuleEngineFault, "RULE3001"},
		{IOReadFailure, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%v) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
