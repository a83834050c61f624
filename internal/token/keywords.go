package token

var keywords = map[string]Kind{
	"null":   KwNull,
	"fn":     KwFn,
	"return": KwReturn,
	"let":    KwLet,
	"if":     KwIf,
	"else":   KwElse,
	"and":    KwAnd,
	"or":     KwOr,
	"for":    KwFor,
	"while":  KwWhile,
	"print":  KwPrint,
}

// LookupKeyword returns the keyword Kind for ident, and whether it is one.
// Keywords are case-sensitive; only the exact lowercase spellings match.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
