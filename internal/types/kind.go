package types

import (
	"stelaro/internal/defs"
	"stelaro/internal/diag"
)

// IntTy enumerates the signed integer widths.
type IntTy uint8

const (
	I8 IntTy = iota
	I16
	I32
	I64
)

// UintTy enumerates the unsigned integer widths.
type UintTy uint8

const (
	U8 UintTy = iota
	U16
	U32
	U64
)

// FloatTy enumerates the floating-point widths.
type FloatTy uint8

const (
	F32 FloatTy = iota
	F64
)

// InferKind discriminates which union-find table an Infer type variable
// belongs to.
type InferKind uint8

const (
	InferTyVar InferKind = iota
	InferIntVar
	InferFloatVar
)

// TyVid, IntVid, and FloatVid identify an entry in InferCtxt's three
// union-find tables. They live here rather than in internal/infer so a
// Ty can reference one without internal/infer importing internal/types
// the other way around.
type TyVid uint32
type IntVid uint32
type FloatVid uint32

// InferTy names one not-yet-resolved type variable.
type InferTy struct {
	Kind     InferKind
	TyVar    TyVid
	IntVar   IntVid
	FloatVar FloatVid
}

// Tag discriminates the form a TyKind takes.
type Tag uint8

const (
	KindBool Tag = iota
	KindChar
	KindStr
	KindInt
	KindUint
	KindFloat
	KindFnDef
	KindTuple
	KindInfer
	KindUnit
	KindNever
	// KindError marks a type built from an already-diagnosed mistake, so
	// it unifies with anything without cascading further diagnostics.
	KindError
)

// TyKind is the content half of an interned Ty. Only the fields relevant
// to Tag are populated.
type TyKind struct {
	Tag Tag

	Int   IntTy   // KindInt
	Uint  UintTy  // KindUint
	Float FloatTy // KindFloat

	FnDef defs.DefId // KindFnDef

	Tuple []Ty // KindTuple: element Tys, already interned themselves

	Infer InferTy // KindInfer

	Guard diag.ErrorGuarantee // KindError
}
