// Package infer implements Hindley-Milner-style type inference over a
// union-find substrate: three separate variable tables (general,
// integer, float), shallow and full resolution, and structural
// unification of interned Ty values.
package infer

import "stelaro/internal/types"

type tyVarValue struct {
	known bool
	ty    types.Ty
}

type intVarKind uint8

const (
	intVarUnknown intVarKind = iota
	intVarInt
	intVarUint
)

type intVarValue struct {
	kind intVarKind
	int  types.IntTy
	uint types.UintTy
}

type floatVarValue struct {
	known bool
	float types.FloatTy
}

// InferCtxt owns the unification state for one function body: the three
// union-find tables backing TyVid/IntVid/FloatVid, plus the Interner they
// hand resolved types back to.
type InferCtxt struct {
	interner *types.Interner

	tyVars    *dsu[tyVarValue]
	intVars   *dsu[intVarValue]
	floatVars *dsu[floatVarValue]
}

// New creates an InferCtxt backed by interner. A fresh InferCtxt is
// expected per checked function, the same scope resolve's parentModule
// swap and lower's ownerFrame save/restore are scoped to.
func New(interner *types.Interner) *InferCtxt {
	return &InferCtxt{
		interner:  interner,
		tyVars:    newDsu[tyVarValue](),
		intVars:   newDsu[intVarValue](),
		floatVars: newDsu[floatVarValue](),
	}
}

// Interner returns the Ty table this context resolves against.
func (icx *InferCtxt) Interner() *types.Interner { return icx.interner }

// NewTyVar creates a fresh, unresolved general type variable.
func (icx *InferCtxt) NewTyVar() types.Ty {
	vid := types.TyVid(icx.tyVars.fresh(tyVarValue{}))
	return icx.interner.Intern(types.TyKind{Tag: types.KindInfer, Infer: types.InferTy{Kind: types.InferTyVar, TyVar: vid}})
}

// NewIntVar creates a fresh, unresolved integer-literal type variable.
func (icx *InferCtxt) NewIntVar() types.Ty {
	vid := types.IntVid(icx.intVars.fresh(intVarValue{}))
	return icx.interner.Intern(types.TyKind{Tag: types.KindInfer, Infer: types.InferTy{Kind: types.InferIntVar, IntVar: vid}})
}

// NewFloatVar creates a fresh, unresolved float-literal type variable.
func (icx *InferCtxt) NewFloatVar() types.Ty {
	vid := types.FloatVid(icx.floatVars.fresh(floatVarValue{}))
	return icx.interner.Intern(types.TyKind{Tag: types.KindInfer, Infer: types.InferTy{Kind: types.InferFloatVar, FloatVar: vid}})
}

// ShallowResolve looks up ty's representative and returns its Known type
// if any, else ty itself (a still-unresolved Infer type).
func (icx *InferCtxt) ShallowResolve(ty types.Ty) types.Ty {
	kind := icx.interner.Kind(ty)
	if kind.Tag != types.KindInfer {
		return ty
	}
	switch kind.Infer.Kind {
	case types.InferTyVar:
		v := icx.tyVars.valueOf(uint32(kind.Infer.TyVar))
		if v.known {
			return icx.ShallowResolve(v.ty)
		}
	case types.InferIntVar:
		v := icx.intVars.valueOf(uint32(kind.Infer.IntVar))
		switch v.kind {
		case intVarInt:
			return icx.interner.Ints[v.int]
		case intVarUint:
			return icx.interner.Uints[v.uint]
		}
	case types.InferFloatVar:
		v := icx.floatVars.valueOf(uint32(kind.Infer.FloatVar))
		if v.known {
			return icx.interner.Floats[v.float]
		}
	}
	return ty
}

// Unify structurally unifies a and b, binding whichever infer variables
// it finds along the way. It reports false on a structural mismatch;
// the caller is responsible for turning that into a TypeMismatch
// diagnostic with whatever span and message fits the call site — Unify
// itself never emits (spec's own invariant: the unification layer never
// sees two different Known values collide, so mismatches are reported by
// the caller before they could reach here).
func (icx *InferCtxt) Unify(a, b types.Ty) bool {
	a = icx.ShallowResolve(a)
	b = icx.ShallowResolve(b)
	if a == b {
		return true
	}
	ak, bk := icx.interner.Kind(a), icx.interner.Kind(b)
	if ak.Tag == types.KindError || bk.Tag == types.KindError {
		// An open general variable takes the error type, so a slot fed by an
		// already-diagnosed expression is not reported again as uninferable.
		if ak.Tag == types.KindInfer && ak.Infer.Kind == types.InferTyVar {
			return icx.bindVar(a, ak.Infer, b)
		}
		if bk.Tag == types.KindInfer && bk.Infer.Kind == types.InferTyVar {
			return icx.bindVar(b, bk.Infer, a)
		}
		return true
	}
	if ak.Tag == types.KindInfer {
		return icx.bindVar(a, ak.Infer, b)
	}
	if bk.Tag == types.KindInfer {
		return icx.bindVar(b, bk.Infer, a)
	}
	if ak.Tag != bk.Tag {
		return false
	}
	if ak.Tag == types.KindTuple {
		if len(ak.Tuple) != len(bk.Tuple) {
			return false
		}
		ok := true
		for i := range ak.Tuple {
			if !icx.Unify(ak.Tuple[i], bk.Tuple[i]) {
				ok = false
			}
		}
		return ok
	}
	return false
}

func (icx *InferCtxt) bindVar(_ types.Ty, infer types.InferTy, other types.Ty) bool {
	switch infer.Kind {
	case types.InferTyVar:
		return icx.bindTyVar(infer.TyVar, other)
	case types.InferIntVar:
		return icx.bindIntVar(infer.IntVar, other)
	case types.InferFloatVar:
		return icx.bindFloatVar(infer.FloatVar, other)
	}
	return false
}

// bindTyVar binds vid to other. By construction other has already been
// shallow-resolved by the caller, so if it is itself an Infer/TyVar its
// value is Unknown (a Known one would have resolved away) — in that case
// the two variables are merged rather than one bound to the other.
func (icx *InferCtxt) bindTyVar(vid types.TyVid, other types.Ty) bool {
	otherKind := icx.interner.Kind(other)
	if otherKind.Tag == types.KindInfer && otherKind.Infer.Kind == types.InferTyVar {
		icx.tyVars.union(uint32(vid), uint32(otherKind.Infer.TyVar), mergeUnknownTyVars)
		return true
	}
	icx.tyVars.setValue(uint32(vid), tyVarValue{known: true, ty: other})
	return true
}

func mergeUnknownTyVars(tyVarValue, tyVarValue) tyVarValue { return tyVarValue{} }

func (icx *InferCtxt) bindIntVar(vid types.IntVid, other types.Ty) bool {
	otherKind := icx.interner.Kind(other)
	switch {
	case otherKind.Tag == types.KindInfer && otherKind.Infer.Kind == types.InferIntVar:
		icx.intVars.union(uint32(vid), uint32(otherKind.Infer.IntVar), mergeUnknownIntVars)
		return true
	case otherKind.Tag == types.KindInt:
		icx.intVars.setValue(uint32(vid), intVarValue{kind: intVarInt, int: otherKind.Int})
		return true
	case otherKind.Tag == types.KindUint:
		icx.intVars.setValue(uint32(vid), intVarValue{kind: intVarUint, uint: otherKind.Uint})
		return true
	default:
		return false
	}
}

func mergeUnknownIntVars(intVarValue, intVarValue) intVarValue { return intVarValue{} }

func (icx *InferCtxt) bindFloatVar(vid types.FloatVid, other types.Ty) bool {
	otherKind := icx.interner.Kind(other)
	switch {
	case otherKind.Tag == types.KindInfer && otherKind.Infer.Kind == types.InferFloatVar:
		icx.floatVars.union(uint32(vid), uint32(otherKind.Infer.FloatVar), mergeUnknownFloatVars)
		return true
	case otherKind.Tag == types.KindFloat:
		icx.floatVars.setValue(uint32(vid), floatVarValue{known: true, float: otherKind.Float})
		return true
	default:
		return false
	}
}

func mergeUnknownFloatVars(floatVarValue, floatVarValue) floatVarValue { return floatVarValue{} }
