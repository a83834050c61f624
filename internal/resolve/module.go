package resolve

import (
	"stelaro/internal/ast"
	"stelaro/internal/defs"
	"stelaro/internal/symbol"
)

// PerNS pairs a per-namespace value: one for ValueNS, one for TypeNS.
type PerNS[T any] struct {
	Value T
	Type  T
}

// Get returns the slot for ns.
func (p *PerNS[T]) Get(ns Namespace) *T {
	if ns == TypeNS {
		return &p.Type
	}
	return &p.Value
}

// OptRes is an optional Res: a namespace slot with nothing bound in it is
// the zero OptRes, not a Res{Kind: ResErr} — those two states are
// distinct, since a slot can be "not attempted" as well as "failed."
type OptRes struct {
	Res     Res
	Present bool
}

// binding pairs a namespace slot's resolved value with the span of the
// definition that last claimed it, so a later duplicate can be reported
// against the correct site.
type binding struct {
	res  OptRes
	span ast.NodeId // the Item NodeId that produced this binding
}

// ModuleData is one module's (or the stelo root's) namespace tables:
// every name declared directly inside it, in each namespace.
type ModuleData struct {
	Def         defs.LocalDefId
	Parent      *ModuleData
	Definitions map[symbol.Symbol]*PerNS[binding]
}

// NewModuleData creates an empty module, seeded with no bindings of its
// own; parent is nil for the stelo root.
func NewModuleData(def defs.LocalDefId, parent *ModuleData) *ModuleData {
	return &ModuleData{Def: def, Parent: parent, Definitions: make(map[symbol.Symbol]*PerNS[binding])}
}

// define records name -> res in ns, applying the override rule: a prior
// ResErr binding is replaced by any non-error; a non-error binding is
// never replaced by ResErr. definedAt is the Item NodeId attempting the
// definition, used for the name-defined-multiple-times diagnostic's span.
//
// ok is false when this call collided with an existing non-error binding
// of a non-error res (both real, distinct definitions) — the caller must
// report code 300 in that case.
func (m *ModuleData) define(ns Namespace, name symbol.Symbol, res Res, definedAt ast.NodeId) (firstAt ast.NodeId, ok bool) {
	perNS, exists := m.Definitions[name]
	if !exists {
		perNS = &PerNS[binding]{}
		m.Definitions[name] = perNS
	}
	slot := perNS.Get(ns)
	if !slot.res.Present {
		slot.res = OptRes{Res: res, Present: true}
		slot.span = definedAt
		return definedAt, true
	}
	if slot.res.Res.IsErr() {
		slot.res = OptRes{Res: res, Present: true}
		slot.span = definedAt
		return definedAt, true
	}
	if res.IsErr() {
		// A non-error binding is never overwritten by an error one; the
		// call still "succeeds" from the caller's point of view since no
		// new collision was introduced.
		return slot.span, true
	}
	first := slot.span
	return first, false
}

// Lookup finds name in ns among this module's own bindings.
func (m *ModuleData) Lookup(ns Namespace, name symbol.Symbol) (Res, bool) {
	perNS, ok := m.Definitions[name]
	if !ok {
		return Res{}, false
	}
	slot := perNS.Get(ns)
	if !slot.res.Present {
		return Res{}, false
	}
	return slot.res.Res, true
}
