package rules

import "strings"

// unsafeFunc carries the message and fix text for one banned function.
type unsafeFunc struct {
	message    string
	suggestion string
}

var unsafeFuncs = map[string]unsafeFunc{
	"gets": {
		"Use of insecure function `gets()` detected.",
		"Use `fgets()` instead of `gets()` to avoid buffer overflows. [CWE-120]",
	},
	"strcpy": {
		"Use of insecure function `strcpy()` detected.",
		"Use `strncpy()` instead with a size limit. [CWE-121]",
	},
	"strcat": {
		"Use of insecure function `strcat()` detected.",
		"Use `strncat()` instead with length checking. [CWE-120]",
	},
	"sprintf": {
		"Use of insecure function `sprintf()` detected.",
		"Use `snprintf()` to avoid overflow. [CWE-120]",
	},
	"vsprintf": {
		"Use of insecure function `vsprintf()` detected.",
		"Use `vsnprintf()` to avoid overflow. [CWE-120]",
	},
}

// unsafeFunctionRule flags calls to functions with no safe usage, plus
// scanf with an unbounded %s conversion.
type unsafeFunctionRule struct{}

func (*unsafeFunctionRule) ID() string      { return "unsafe-function" }
func (*unsafeFunctionRule) NeedsTree() bool { return false }

func (*unsafeFunctionRule) Evaluate(in *Input) []Finding {
	var out []Finding
	for _, call := range extractCalls(in.Tokens) {
		if info, ok := unsafeFuncs[call.Name]; ok {
			out = append(out, Finding{
				RuleID:     "unsafe-function",
				Severity:   SevCritical,
				Line:       call.Line,
				Message:    info.message,
				Suggestion: info.suggestion,
			})
			continue
		}
		if call.Name == "scanf" && len(call.Args) > 0 &&
			isStringLiteralArg(call.Args[0]) &&
			hasBareStringConversion(unquote(call.Args[0][0].Text)) {
			out = append(out, Finding{
				RuleID:     "unsafe-function",
				Severity:   SevCritical,
				Line:       call.Line,
				Message:    "Use of `scanf()` with unbounded `%s` detected.",
				Suggestion: "Always use length specifiers like `%10s` in `scanf`. [CWE-120]",
			})
		}
	}
	return out
}

// hasBareStringConversion reports a %s with no field width, the conversion
// that lets scanf write past any buffer.
func hasBareStringConversion(format string) bool {
	for i := 0; i+1 < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if format[i+1] == '%' {
			i++
			continue
		}
		j := i + 1
		width := false
		for j < len(format) && format[j] >= '0' && format[j] <= '9' {
			width = true
			j++
		}
		if j < len(format) && format[j] == 's' && !width {
			return true
		}
		if idx := strings.IndexByte(format[i+1:], '%'); idx >= 0 {
			i += idx
		} else {
			break
		}
	}
	return false
}
