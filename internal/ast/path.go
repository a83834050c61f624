package ast

import (
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// PathSegment is one `ident` component of a Path, carrying its own NodeId
// so name resolution can record a Res against the exact segment it resolved
// rather than the path as a whole.
type PathSegment struct {
	Id    NodeId
	Span  source.Span
	Ident symbol.Symbol
}

// Path is a non-empty, possibly-qualified sequence of segments, e.g. `foo`
// or `mod::foo`.
type Path struct {
	Span     source.Span
	Segments []PathSegment
}

// Last returns the final segment, the one a Path expression or type refers
// to by name.
func (p *Path) Last() PathSegment {
	return p.Segments[len(p.Segments)-1]
}
