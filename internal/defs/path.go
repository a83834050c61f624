package defs

import "stelaro/internal/symbol"

// DefPathDataKind discriminates the shape of one DefPath segment. Its
// numeric value is mixed into the segment's DefPathHash, so renumbering it
// changes every hash downstream — treat it as part of the stable format.
type DefPathDataKind uint8

const (
	// SteloRoot names the single root module of a stelo. It carries no
	// symbol of its own.
	SteloRoot DefPathDataKind = iota
	// TypeNs names a definition in the type namespace (currently: a
	// module). The symbol is optional since an anonymous type-namespace
	// item is conceivable even though nothing in this grammar produces one
	// yet.
	TypeNs
	// ValueNs names a definition in the value namespace (a function).
	ValueNs
)

// DefPathData is one segment of a definition's path: what kind of thing it
// is, and (for everything but the stelo root) its name.
type DefPathData struct {
	Kind DefPathDataKind
	// Name is valid when HasName is true. The root carries no name; a
	// named TypeNs or ValueNs segment always sets both.
	Name    symbol.Symbol
	HasName bool
}

// RootData is the DefPathData of the stelo root.
func RootData() DefPathData {
	return DefPathData{Kind: SteloRoot}
}

// NewTypeNsData builds the DefPathData for a module definition.
func NewTypeNsData(name symbol.Symbol) DefPathData {
	return DefPathData{Kind: TypeNs, Name: name, HasName: true}
}

// NewValueNsData builds the DefPathData for a function definition.
func NewValueNsData(name symbol.Symbol) DefPathData {
	return DefPathData{Kind: ValueNs, Name: name, HasName: true}
}

// DefKey is the parent pointer plus shape of one definition, as stored in
// the DefPathTable. Disambiguator distinguishes sibling definitions that
// would otherwise collide on (parent, kind, name) — e.g. nested modules
// with the same name under the same parent.
type DefKey struct {
	Parent        DefIndex
	HasParent     bool
	Data          DefPathData
	Disambiguator uint32
}

// DisambiguatedDefPathData pairs one path segment with the index it was
// allocated at, as produced by DefPathTable.DefPath when walking a
// definition up to the stelo root.
type DisambiguatedDefPathData struct {
	Data  DefPathData
	Index DefIndex
}

// DefPath is the full root-to-leaf sequence of path segments for one
// definition, in root-first order.
type DefPath []DisambiguatedDefPathData
