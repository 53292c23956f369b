package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Ranges are reserved per phase:
// 1000-1999 lexical, 2000-2999 syntactic, 3000-3999 rule engine,
// 4000-4999 I/O and driver.
type Code uint16

const (
	// UnknownCode is the zero value for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical diagnostics.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005

	// Syntactic diagnostics.
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectSemicolon  Code = 2002
	SynUnclosedParen    Code = 2003
	SynUnclosedBrace    Code = 2004
	SynUnclosedBracket  Code = 2005
	SynExpectIdentifier Code = 2006
	SynExpectExpression Code = 2007
	SynExpectType       Code = 2008
	SynComplexityLimit  Code = 2009

	// Rule-engine diagnostics.
	RuleInfo        Code = 3000
	RuleEngineFault Code = 3001

	// Driver/I-O diagnostics.
	IOInfo        Code = 4000
	IOReadFailure Code = 4001
)

// ID renders the phase-prefixed identifier shown to users, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RULE%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) String() string {
	switch c {
	case LexInfo:
		return "LexInfo"
	case LexUnknownChar:
		return "LexUnknownChar"
	case LexUnterminatedString:
		return "LexUnterminatedString"
	case LexUnterminatedChar:
		return "LexUnterminatedChar"
	case LexUnterminatedBlockComment:
		return "LexUnterminatedBlockComment"
	case LexBadNumber:
		return "LexBadNumber"
	case SynInfo:
		return "SynInfo"
	case SynUnexpectedToken:
		return "SynUnexpectedToken"
	case SynExpectSemicolon:
		return "SynExpectSemicolon"
	case SynUnclosedParen:
		return "SynUnclosedParen"
	case SynUnclosedBrace:
		return "SynUnclosedBrace"
	case SynUnclosedBracket:
		return "SynUnclosedBracket"
	case SynExpectIdentifier:
		return "SynExpectIdentifier"
	case SynExpectExpression:
		return "SynExpectExpression"
	case SynExpectType:
		return "SynExpectType"
	case SynComplexityLimit:
		return "SynComplexityLimit"
	case RuleInfo:
		return "RuleInfo"
	case RuleEngineFault:
		return "RuleEngineFault"
	case IOInfo:
		return "IOInfo"
	case IOReadFailure:
		return "IOReadFailure"
	}
	return "UnknownCode"
}
