package infer_test

import (
	"testing"

	"stelaro/internal/infer"
	"stelaro/internal/types"
)

func TestUnifyBindsTyVarToConcreteType(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	v := icx.NewTyVar()
	if !icx.Unify(v, in.Bool) {
		t.Fatal("unifying a fresh TyVar with bool should succeed")
	}
	if got := icx.ShallowResolve(v); got != in.Bool {
		t.Fatalf("ShallowResolve(v) = %v, want Bool", got)
	}
}

func TestUnifyMergesTwoTyVars(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	a, b := icx.NewTyVar(), icx.NewTyVar()
	if !icx.Unify(a, b) {
		t.Fatal("unifying two fresh TyVars should succeed")
	}
	if !icx.Unify(a, in.Str) {
		t.Fatal("binding one merged TyVar should resolve the other too")
	}
	if got := icx.ShallowResolve(b); got != in.Str {
		t.Fatalf("ShallowResolve(b) = %v, want Str (merged with a)", got)
	}
}

func TestUnifyRejectsMismatchedGroundTypes(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	if icx.Unify(in.Bool, in.Str) {
		t.Fatal("unifying bool with str should fail")
	}
}

func TestUnifyErrorTypeAlwaysSucceeds(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	errTy := in.Intern(types.TyKind{Tag: types.KindError})
	if !icx.Unify(errTy, in.Bool) {
		t.Fatal("an error type should unify with anything")
	}
}

func TestIntVarDefaultsToInt32WhenUnconstrained(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	v := icx.NewIntVar()
	resolved, ok := icx.FullyResolve(v)
	if !ok {
		t.Fatal("an unconstrained IntVar should still fully resolve")
	}
	if resolved != in.Int32() {
		t.Fatalf("resolved = %v, want Int32()", resolved)
	}
}

func TestIntVarUnifiedWithU8ResolvesToU8(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	v := icx.NewIntVar()
	if !icx.Unify(v, in.Uints[types.U8]) {
		t.Fatal("unifying an IntVar with u8 should succeed")
	}
	resolved, ok := icx.FullyResolve(v)
	if !ok || resolved != in.Uints[types.U8] {
		t.Fatalf("resolved = %v, ok = %v, want Uints[U8], true", resolved, ok)
	}
}

func TestIntVarRejectsNonIntegerType(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	v := icx.NewIntVar()
	if icx.Unify(v, in.Bool) {
		t.Fatal("unifying an IntVar with bool should fail")
	}
}

func TestFloatVarDefaultsToFloat64WhenUnconstrained(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	v := icx.NewFloatVar()
	resolved, ok := icx.FullyResolve(v)
	if !ok || resolved != in.Float64() {
		t.Fatalf("resolved = %v, ok = %v, want Float64(), true", resolved, ok)
	}
}

func TestFullyResolveFailsOnUnresolvedTyVar(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	v := icx.NewTyVar()
	_, ok := icx.FullyResolve(v)
	if ok {
		t.Fatal("an unconstrained general TyVar has no default and should not fully resolve")
	}
}

func TestAdjustForBranchesDowngradesOpenExpectation(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	open := infer.ExpectType(icx.NewTyVar())
	adjusted := icx.AdjustForBranches(open)
	if adjusted.Kind != infer.NoExpectation {
		t.Fatal("an expectation pinned to an unresolved TyVar should downgrade to NoExpectation")
	}

	pinned := infer.ExpectType(in.Bool)
	adjusted = icx.AdjustForBranches(pinned)
	if adjusted.Kind != infer.ExpectHasType || adjusted.Ty != in.Bool {
		t.Fatal("an expectation pinned to a concrete type should pass through unchanged")
	}
}

func TestCoercionTargetTypeFallsBackToFreshVar(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	target := icx.CoercionTargetType(infer.NoExpect())
	if in.Kind(target).Tag != types.KindInfer {
		t.Fatal("CoercionTargetType with no expectation should hand back a fresh type variable")
	}
}

func TestTupleUnifiesElementwise(t *testing.T) {
	in := types.NewInterner()
	icx := infer.New(in)
	v := icx.NewTyVar()
	a := in.Intern(types.TyKind{Tag: types.KindTuple, Tuple: []types.Ty{in.Bool, v}})
	b := in.Intern(types.TyKind{Tag: types.KindTuple, Tuple: []types.Ty{in.Bool, in.Str}})
	if !icx.Unify(a, b) {
		t.Fatal("tuples with a unifiable element should unify")
	}
	if got := icx.ShallowResolve(v); got != in.Str {
		t.Fatalf("ShallowResolve(v) = %v, want Str", got)
	}
}
