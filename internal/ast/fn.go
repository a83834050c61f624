package ast

import "stelaro/internal/source"

// FnParam is one declared parameter of a function.
type FnParam struct {
	Id   NodeId
	Span source.Span
	Pat  *Pattern
	Ty   *Type
}

// FnRetTyKind discriminates whether a function declares an explicit return
// type.
type FnRetTyKind uint8

const (
	// FnRetDefault means no `-> Ty` or `=> Ty` was written; the function's
	// return type is the unit type.
	FnRetDefault FnRetTyKind = iota
	// FnRetExplicit means an explicit return type follows the arrow.
	FnRetExplicit
)

// FnRetTy is a function's declared return type.
type FnRetTy struct {
	Kind FnRetTyKind
	// Ty is valid when Kind == FnRetExplicit.
	Ty *Type
}

// FnSig is a function's signature: its parameter list and return type.
type FnSig struct {
	Span   source.Span
	Params []*FnParam
	RetTy  FnRetTy
}
