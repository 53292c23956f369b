package token

var keywords = map[string]Kind{
	"auto":     KwAuto,
	"break":    KwBreak,
	"case":     KwCase,
	"char":     KwChar,
	"const":    KwConst,
	"continue": KwContinue,
	"default":  KwDefault,
	"do":       KwDo,
	"double":   KwDouble,
	"else":     KwElse,
	"enum":     KwEnum,
	"extern":   KwExtern,
	"float":    KwFloat,
	"for":      KwFor,
	"goto":     KwGoto,
	"if":       KwIf,
	"inline":   KwInline,
	"int":      KwInt,
	"long":     KwLong,
	"register": KwRegister,
	"restrict": KwRestrict,
	"return":   KwReturn,
	"short":    KwShort,
	"signed":   KwSigned,
	"sizeof":   KwSizeof,
	"static":   KwStatic,
	"struct":   KwStruct,
	"switch":   KwSwitch,
	"typedef":  KwTypedef,
	"union":    KwUnion,
	"unsigned": KwUnsigned,
	"void":     KwVoid,
	"volatile": KwVolatile,
	"while":    KwWhile,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// C keywords are case-sensitive; only lowercase spellings match.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
