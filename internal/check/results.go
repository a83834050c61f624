// Package check implements expectation-driven type checking over SIR: an
// InferCtxt-backed walk of each function's body, assigning every node a
// Ty and recording it in a TypeckResults keyed by owner.
package check

import (
	"stelaro/internal/sir"
	"stelaro/internal/types"
)

// TypeckResults is one function's checking output: every checked node's
// type, plus whether any error was reported against it.
type TypeckResults struct {
	NodeTypes       map[sir.ItemLocalId]types.Ty
	TaintedByErrors bool
}

func newTypeckResults() *TypeckResults {
	return &TypeckResults{NodeTypes: make(map[sir.ItemLocalId]types.Ty)}
}

func (r *TypeckResults) record(id sir.ItemLocalId, ty types.Ty) types.Ty {
	r.NodeTypes[id] = ty
	return ty
}
