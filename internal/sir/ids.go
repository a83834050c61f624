// Package sir implements the post-lowering intermediate representation:
// SIR nodes addressed by an owner-scoped local ID rather than the flat,
// pointer-identified AST node they were lowered from.
package sir

import "stelaro/internal/defs"

// OwnerId is the LocalDefId of the definition that owns a dense region of
// local IDs. Every SirId's first component is an OwnerId.
type OwnerId = defs.LocalDefId

// ItemLocalId is a local ID within one owner's node region, densely
// numbered starting at Zero.
type ItemLocalId uint32

// Zero is the owner's own slot: a SirId{owner, Zero} always resolves to
// the OwnerNode for owner itself.
const Zero ItemLocalId = 0

// MaxItemLocalId is the "invalid" sentinel for an ItemLocalId, used where
// no local ID has been assigned yet.
const MaxItemLocalId ItemLocalId = ^ItemLocalId(0)

// SirId is the globally stable identity of a SIR node: which definition
// owns the region it lives in, plus its dense local offset within that
// region.
type SirId struct {
	Owner   OwnerId
	LocalId ItemLocalId
}

// IsOwner reports whether id addresses the owner node itself (local id 0).
func (id SirId) IsOwner() bool { return id.LocalId == Zero }
