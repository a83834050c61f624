// Package resolve implements two-phase name resolution: a module-graph
// build pass that assigns every item a definition and records it in its
// enclosing module's namespace tables, followed by a late-resolution pass
// that walks the AST maintaining lexical scopes and resolves every path
// and pattern binding against them.
package resolve

import (
	"stelaro/internal/ast"
	"stelaro/internal/defs"
)

// Namespace is one of the two tables a name can be bound in. A module and
// a function may share a name because they occupy different namespaces.
type Namespace uint8

const (
	ValueNS Namespace = iota
	TypeNS
)

// String names a Namespace for diagnostic messages.
func (ns Namespace) String() string {
	if ns == TypeNS {
		return "type"
	}
	return "value"
}

// DefKind distinguishes what kind of item a Res::Def points to.
type DefKind uint8

const (
	DefKindFn DefKind = iota
	DefKindMod
)

// PrimTy names one of the language's built-in ground types, the targets a
// TypeNS path resolves to when it isn't a user-defined item. Bound into
// the stelo root's TypeNS table rather than lexed as a keyword, the way
// `internal/lexer` treats every other identifier.
type PrimTy uint8

const (
	PrimBool PrimTy = iota
	PrimChar
	PrimStr
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimF32
	PrimF64
	PrimUnit
)

// primTyNames binds the identifier spellings recognized in type position
// to their PrimTy, seeded into the stelo root's TypeNS table.
var primTyNames = map[string]PrimTy{
	"bool": PrimBool,
	"char": PrimChar,
	"str":  PrimStr,
	"i8":   PrimI8,
	"i16":  PrimI16,
	"i32":  PrimI32,
	"i64":  PrimI64,
	"u8":   PrimU8,
	"u16":  PrimU16,
	"u32":  PrimU32,
	"u64":  PrimU64,
	"f32":  PrimF32,
	"f64":  PrimF64,
}

// ResKind discriminates the shape of a Res.
type ResKind uint8

const (
	// ResDef is a reference to an item-level definition: a function
	// (DefKindFn) or a module (DefKindMod).
	ResDef ResKind = iota
	// ResLocal is a reference to a `let`-bound or parameter-bound local,
	// identified by the AST NodeId of the binding Pattern.
	ResLocal
	// ResPrimTy is a reference to a built-in ground type name.
	ResPrimTy
	// ResErr marks a path that failed to resolve; downstream passes treat
	// an expression or type built on ResErr as already-diagnosed.
	ResErr
)

// Res is the result of resolving one path or pattern occurrence: what kind
// of thing it named, and which thing specifically.
type Res struct {
	Kind ResKind

	// Def: valid when Kind == ResDef.
	DefKind DefKind
	Def     defs.DefId

	// Local: valid when Kind == ResLocal.
	Local ast.NodeId

	// PrimTy: valid when Kind == ResPrimTy.
	Prim PrimTy
}

// ErrRes is the sentinel Res bound when resolution fails, so downstream
// Option<Res>-style slots stay populated rather than nil.
var ErrRes = Res{Kind: ResErr}

// IsErr reports whether r represents a failed resolution.
func (r Res) IsErr() bool { return r.Kind == ResErr }
