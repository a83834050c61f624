package ast

import "math"

// NodeId identifies an AST node. IDs are allocated monotonically by the
// parser as it builds the tree.
type NodeId uint32

// DummyNodeId is the sentinel "not yet assigned" value. It must never
// appear in a tree handed off to name resolution.
const DummyNodeId NodeId = math.MaxUint32

// IsDummy reports whether id is the dummy sentinel.
func (id NodeId) IsDummy() bool { return id == DummyNodeId }
