package infer

import "stelaro/internal/types"

// Resolve is the opportunistic var resolver: it shallow-resolves ty, then
// recurses into any structural children (Tuple elements) so a partially
// pinned-down composite type reflects everything known about it so far,
// without requiring every leaf variable to already be resolved.
func (icx *InferCtxt) Resolve(ty types.Ty) types.Ty {
	resolved := icx.ShallowResolve(ty)
	kind := icx.interner.Kind(resolved)
	if kind.Tag != types.KindTuple {
		return resolved
	}
	elems := make([]types.Ty, len(kind.Tuple))
	changed := false
	for i, elem := range kind.Tuple {
		elems[i] = icx.Resolve(elem)
		if elems[i] != elem {
			changed = true
		}
	}
	if !changed {
		return resolved
	}
	return icx.interner.Intern(types.TyKind{Tag: types.KindTuple, Tuple: elems})
}

// FullyResolve resolves ty as completely as this InferCtxt can: leftover
// IntVar defaults to Int32, leftover FloatVar to Float64 (the "widest
// common case" choice, matching the unannotated-literal behavior of the
// language this was distilled from). A leftover general TyVar has no such
// default — nothing pins its class the way a numeric literal does — so it
// is returned unresolved with ok=false, letting the caller report
// TypeCannotInferVar.
func (icx *InferCtxt) FullyResolve(ty types.Ty) (resolved types.Ty, ok bool) {
	r := icx.Resolve(ty)
	kind := icx.interner.Kind(r)
	switch kind.Tag {
	case types.KindInfer:
		switch kind.Infer.Kind {
		case types.InferTyVar:
			return r, false
		case types.InferIntVar:
			return icx.interner.Int32(), true
		case types.InferFloatVar:
			return icx.interner.Float64(), true
		}
		return r, false
	case types.KindTuple:
		elems := make([]types.Ty, len(kind.Tuple))
		allOk := true
		for i, elem := range kind.Tuple {
			var elemOk bool
			elems[i], elemOk = icx.FullyResolve(elem)
			allOk = allOk && elemOk
		}
		return icx.interner.Intern(types.TyKind{Tag: types.KindTuple, Tuple: elems}), allOk
	default:
		return r, true
	}
}
