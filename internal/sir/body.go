package sir

import "stelaro/internal/collections"

// Body is a function's lowered body: its parameter local ids (mirroring
// the owner node's own Params, kept alongside for lookup convenience) and
// the local id of its block value.
type Body struct {
	Params []ItemLocalId
	Value  ItemLocalId
}

// OwnerNodes is everything lowering records for one definition owner: its
// dense node region and the bodies nested within it.
type OwnerNodes struct {
	Nodes  collections.IndexVec[ItemLocalId, ParentedNode]
	Bodies collections.SortedMap[ItemLocalId, *Body]
}

// NewOwnerNodes creates an empty region. Callers push the owner's own
// NodeOwner entry at Zero before anything else.
func NewOwnerNodes() *OwnerNodes {
	return &OwnerNodes{}
}
