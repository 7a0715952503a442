package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"let":        KwLet,
	"const":      KwConst,
	"function":   KwFunction,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"for":        KwFor,
	"switch":     KwSwitch,
	"case":       KwCase,
	"default":    KwDefault,
	"break":      KwBreak,
	"continue":   KwContinue,
	"new":        KwNew,
	"typeof":     KwTypeof,
	"delete":     KwDelete,
	"void":       KwVoid,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"this":       KwThis,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
}

// LookupKeyword resolves a lexeme to its keyword kind, if any.
func LookupKeyword(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}
