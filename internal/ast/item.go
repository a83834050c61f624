package ast

import (
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// ItemKind discriminates the forms a top-level item can take.
type ItemKind uint8

const (
	// ItemFunction is a `fn` declaration.
	ItemFunction ItemKind = iota
	// ItemMod is an inline `mod name { items... }` declaration.
	ItemMod
)

// Item is a top-level (or module-nested) declaration.
type Item struct {
	Id    NodeId
	Span  source.Span
	Ident symbol.Symbol
	Kind  ItemKind

	// Function: valid when Kind == ItemFunction.
	Sig  *FnSig
	Body *Expr // always an ExprBlock

	// Mod: valid when Kind == ItemMod. An out-of-line `mod name;` form
	// does not exist in this grammar; every module is inline.
	Items []*Item
}
