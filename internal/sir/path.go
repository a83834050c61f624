package sir

import (
	"stelaro/internal/resolve"
	"stelaro/internal/symbol"
)

// PathSegment is one component of a lowered path, carrying the SirId the
// lowering context allocated for it.
type PathSegment struct {
	Id    SirId
	Ident symbol.Symbol
}

// Path is a lowered name reference. Res is injected from the resolver's
// output during lowering, so nothing downstream needs to re-resolve names.
type Path struct {
	Segments []PathSegment
	Res      resolve.Res
}

// Last returns the final segment, the one Res describes.
func (p *Path) Last() PathSegment {
	return p.Segments[len(p.Segments)-1]
}
