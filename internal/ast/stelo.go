package ast

import "stelaro/internal/source"

// Stelo is the root of a parsed source file: an ordered list of top-level
// items.
type Stelo struct {
	Id    NodeId
	Span  source.Span
	Items []*Item
}
