package infer

import "stelaro/internal/types"

// ExpectationKind discriminates the shape of an Expectation.
type ExpectationKind uint8

const (
	NoExpectation ExpectationKind = iota
	ExpectHasType
)

// Expectation carries the type a caller would like an expression to have,
// threaded down through checking so literals and branches can settle on
// a concrete type without a separate unification pass.
type Expectation struct {
	Kind ExpectationKind
	Ty   types.Ty
}

// NoExpect is the expectation carrying no hint at all.
func NoExpect() Expectation { return Expectation{Kind: NoExpectation} }

// ExpectType builds an expectation pinned to ty.
func ExpectType(ty types.Ty) Expectation { return Expectation{Kind: ExpectHasType, Ty: ty} }

// AdjustForBranches downgrades exp to NoExpectation if its type is still
// an unresolved variable, so an If's two branches are each inferred
// independently before being unified against one another — unifying both
// branches against a shared open variable instead would let the first
// branch checked silently dictate the second's type.
func (icx *InferCtxt) AdjustForBranches(exp Expectation) Expectation {
	if exp.Kind != ExpectHasType {
		return exp
	}
	resolved := icx.ShallowResolve(exp.Ty)
	if icx.interner.Kind(resolved).Tag == types.KindInfer {
		return NoExpect()
	}
	return ExpectType(resolved)
}

// CoercionTargetType returns exp's pinned type, or a fresh TyVar when exp
// carries no hint.
func (icx *InferCtxt) CoercionTargetType(exp Expectation) types.Ty {
	if exp.Kind == ExpectHasType {
		return exp.Ty
	}
	return icx.NewTyVar()
}
