package sir

import (
	"stelaro/internal/ast"
	"stelaro/internal/collections"
	"stelaro/internal/defs"
)

// MaybeOwnerKind discriminates what a Crate.Owners slot holds.
type MaybeOwnerKind uint8

const (
	// OwnerPhantom marks a LocalDefId that lowering has not yet reached —
	// a bug if still phantom once lowering completes.
	OwnerPhantom MaybeOwnerKind = iota
	// OwnerPresent holds the definition's own node region.
	OwnerPresent
	// OwnerNonOwner marks a definition that never gets its own region and
	// instead forwards to another owner's SirId.
	OwnerNonOwner
)

// MaybeOwner is one slot of Crate.Owners.
type MaybeOwner struct {
	Kind MaybeOwnerKind

	// Nodes is valid when Kind == OwnerPresent.
	Nodes *OwnerNodes
	// Foreign is valid when Kind == OwnerNonOwner.
	Foreign SirId
}

// Crate is the complete lowered program: one node region per definition,
// indexed by the LocalDefId that owns it.
type Crate struct {
	Owners collections.IndexVec[defs.LocalDefId, MaybeOwner]

	// Locals maps a `let`/parameter pattern's original ast.NodeId (the id
	// resolve.Res{Kind: ResLocal} carries) to the SirId of the SIR node
	// that binding lowered to — the bridge a path's ResLocal resolution
	// needs to find "the recorded pattern type" spec §4.8 describes,
	// since SIR addresses nodes by ItemLocalId rather than by ast.NodeId.
	Locals map[ast.NodeId]SirId
}

// NewCrate creates an empty Crate. Lowering pushes one slot per
// definition, in the same order DefCollector created them, so a
// definition's LocalDefId always indexes its own slot.
func NewCrate() *Crate {
	return &Crate{Locals: make(map[ast.NodeId]SirId)}
}

// AccessOwner looks up id's region, treating a phantom or non-owner slot
// as an internal bug: every definition this grammar produces (fn or mod)
// is always its own owner, so by the time lowering has finished every
// reachable slot must be OwnerPresent.
func (c *Crate) AccessOwner(id defs.LocalDefId) *OwnerNodes {
	slot := c.Owners.Get(id)
	if slot.Kind != OwnerPresent {
		panic("sir: access to a phantom or non-owner SIR slot")
	}
	return slot.Nodes
}
