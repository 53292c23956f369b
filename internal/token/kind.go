package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwAuto represents the 'auto' keyword.
	KwAuto
	// KwBreak represents the 'break' keyword.
	KwBreak
	// KwCase represents the 'case' keyword.
	KwCase
	// KwChar represents the 'char' keyword.
	KwChar
	// KwConst represents the 'const' keyword.
	KwConst
	// KwContinue represents the 'continue' keyword.
	KwContinue
	// KwDefault represents the 'default' keyword.
	KwDefault
	// KwDo represents the 'do' keyword.
	KwDo
	// KwDouble represents the 'double' keyword.
	KwDouble
	// KwElse represents the 'else' keyword.
	KwElse
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwExtern represents the 'extern' keyword.
	KwExtern
	// KwFloat represents the 'float' keyword.
	KwFloat
	// KwFor represents the 'for' keyword.
	KwFor
	// KwGoto represents the 'goto' keyword.
	KwGoto
	// KwIf represents the 'if' keyword.
	KwIf
	// KwInline represents the 'inline' keyword.
	KwInline
	// KwInt represents the 'int' keyword.
	KwInt
	// KwLong represents the 'long' keyword.
	KwLong
	// KwRegister represents the 'register' keyword.
	KwRegister
	// KwRestrict represents the 'restrict' keyword.
	KwRestrict
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwShort represents the 'short' keyword.
	KwShort
	// KwSigned represents the 'signed' keyword.
	KwSigned
	// KwSizeof represents the 'sizeof' keyword.
	KwSizeof
	// KwStatic represents the 'static' keyword.
	KwStatic
	// KwStruct represents the 'struct' keyword.
	KwStruct
	// KwSwitch represents the 'switch' keyword.
	KwSwitch
	// KwTypedef represents the 'typedef' keyword.
	KwTypedef
	// KwUnion represents the 'union' keyword.
	KwUnion
	// KwUnsigned represents the 'unsigned' keyword.
	KwUnsigned
	// KwVoid represents the 'void' keyword.
	KwVoid
	// KwVolatile represents the 'volatile' keyword.
	KwVolatile
	// KwWhile represents the 'while' keyword.
	KwWhile

	// IntLit represents an integer literal (decimal, hex, or octal).
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// StringLit represents a string literal.
	StringLit
	// CharLit represents a character literal.
	CharLit

	// Preprocessor represents a whole preprocessor directive line.
	Preprocessor
	// Comment represents a line or block comment.
	Comment

	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Star represents '*'.
	Star
	// Slash represents '/'.
	Slash
	// Percent represents '%'.
	Percent
	// PlusPlus represents '++'.
	PlusPlus
	// MinusMinus represents '--'.
	MinusMinus
	// Assign represents '='.
	Assign
	// PlusAssign represents '+='.
	PlusAssign
	// MinusAssign represents '-='.
	MinusAssign
	// StarAssign represents '*='.
	StarAssign
	// SlashAssign represents '/='.
	SlashAssign
	// PercentAssign represents '%='.
	PercentAssign
	// AmpAssign represents '&='.
	AmpAssign
	// PipeAssign represents '|='.
	PipeAssign
	// CaretAssign represents '^='.
	CaretAssign
	// ShlAssign represents '<<='.
	ShlAssign
	// ShrAssign represents '>>='.
	ShrAssign
	// EqEq represents '=='.
	EqEq
	// BangEq represents '!='.
	BangEq
	// Lt represents '<'.
	Lt
	// LtEq represents '<='.
	LtEq
	// Gt represents '>'.
	Gt
	// GtEq represents '>='.
	GtEq
	// AndAnd represents '&&'.
	AndAnd
	// OrOr represents '||'.
	OrOr
	// Bang represents '!'.
	Bang
	// Amp represents '&'.
	Amp
	// Pipe represents '|'.
	Pipe
	// Caret represents '^'.
	Caret
	// Tilde represents '~'.
	Tilde
	// Shl represents '<<'.
	Shl
	// Shr represents '>>'.
	Shr
	// Question represents '?'.
	Question
	// Colon represents ':'.
	Colon
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// Arrow represents '->'.
	Arrow
	// Ellipsis represents '...'.
	Ellipsis
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
)

var kindNames = map[Kind]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Ident",

	KwAuto: "KwAuto", KwBreak: "KwBreak", KwCase: "KwCase", KwChar: "KwChar",
	KwConst: "KwConst", KwContinue: "KwContinue", KwDefault: "KwDefault",
	KwDo: "KwDo", KwDouble: "KwDouble", KwElse: "KwElse", KwEnum: "KwEnum",
	KwExtern: "KwExtern", KwFloat: "KwFloat", KwFor: "KwFor", KwGoto: "KwGoto",
	KwIf: "KwIf", KwInline: "KwInline", KwInt: "KwInt", KwLong: "KwLong",
	KwRegister: "KwRegister", KwRestrict: "KwRestrict", KwReturn: "KwReturn",
	KwShort: "KwShort", KwSigned: "KwSigned", KwSizeof: "KwSizeof",
	KwStatic: "KwStatic", KwStruct: "KwStruct", KwSwitch: "KwSwitch",
	KwTypedef: "KwTypedef", KwUnion: "KwUnion", KwUnsigned: "KwUnsigned",
	KwVoid: "KwVoid", KwVolatile: "KwVolatile", KwWhile: "KwWhile",

	IntLit: "IntLit", FloatLit: "FloatLit", StringLit: "StringLit", CharLit: "CharLit",

	Preprocessor: "Preprocessor", Comment: "Comment",

	Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash", Percent: "Percent",
	PlusPlus: "PlusPlus", MinusMinus: "MinusMinus",
	Assign: "Assign", PlusAssign: "PlusAssign", MinusAssign: "MinusAssign",
	StarAssign: "StarAssign", SlashAssign: "SlashAssign", PercentAssign: "PercentAssign",
	AmpAssign: "AmpAssign", PipeAssign: "PipeAssign", CaretAssign: "CaretAssign",
	ShlAssign: "ShlAssign", ShrAssign: "ShrAssign",
	EqEq: "EqEq", BangEq: "BangEq", Lt: "Lt", LtEq: "LtEq", Gt: "Gt", GtEq: "GtEq",
	AndAnd: "AndAnd", OrOr: "OrOr", Bang: "Bang",
	Amp: "Amp", Pipe: "Pipe", Caret: "Caret", Tilde: "Tilde", Shl: "Shl", Shr: "Shr",
	Question: "Question", Colon: "Colon", Semicolon: "Semicolon", Comma: "Comma",
	Dot: "Dot", Arrow: "Arrow", Ellipsis: "Ellipsis",
	LParen: "LParen", RParen: "RParen", LBrace: "LBrace", RBrace: "RBrace",
	LBracket: "LBracket", RBracket: "RBracket",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
