package ast

import (
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// PatternKind discriminates the two binding forms a `let` or parameter
// pattern can take.
type PatternKind uint8

const (
	// PatWildcard is the `_` pattern: it binds nothing.
	PatWildcard PatternKind = iota
	// PatIdent binds Ident to the matched value.
	PatIdent
)

// Pattern is the left-hand side of a `let` binding or a function parameter.
type Pattern struct {
	Id   NodeId
	Span source.Span
	Kind PatternKind

	// Ident is valid when Kind == PatIdent.
	Ident symbol.Symbol
}
