package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"int":      KwInt,
		"char":     KwChar,
		"void":     KwVoid,
		"return":   KwReturn,
		"if":       KwIf,
		"else":     KwElse,
		"while":    KwWhile,
		"for":      KwFor,
		"sizeof":   KwSizeof,
		"struct":   KwStruct,
		"unsigned": KwUnsigned,
		"typedef":  KwTypedef,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Int", "RETURN", "If", // C keywords are case-sensitive
		"main", "printf", "strcpy", // library names are plain identifiers
		"bool", "string", // not in the supported subset
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
