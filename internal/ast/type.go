package ast

import "stelaro/internal/source"

// TypeKind discriminates the forms a type annotation can take.
type TypeKind uint8

const (
	// TypePath is a named type, e.g. `i32` or `bool`.
	TypePath TypeKind = iota
	// TypeInfer is the placeholder `_`, left for inference to fill in.
	TypeInfer
	// TypeUnit is the zero-size `()` type, the implicit return type of a
	// function with no declared FnRetTy.
	TypeUnit
)

// Type is a type annotation as written in source: a parameter's declared
// type, a function's return type, or a `let`'s optional type annotation.
type Type struct {
	Id   NodeId
	Span source.Span
	Kind TypeKind

	// Path is valid when Kind == TypePath.
	Path *Path
}
