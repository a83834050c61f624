package token

import (
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// Token represents a single source token with its location and interned
// text. There is no leading-trivia list: comments are discarded by the
// lexer rather than preserved for a formatter, since source formatting is
// out of scope.
type Token struct {
	Kind   Kind
	Span   source.Span
	Symbol symbol.Symbol
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
