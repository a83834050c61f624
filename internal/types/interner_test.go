package types_test

import (
	"testing"

	"stelaro/internal/defs"
	"stelaro/internal/types"
)

func TestGroundTypesArePreinterned(t *testing.T) {
	in := types.NewInterner()
	if in.Kind(in.Bool).Tag != types.KindBool {
		t.Fatal("Bool did not intern as KindBool")
	}
	if in.Int32() != in.Ints[types.I32] {
		t.Fatal("Int32() should be the I32 entry of Ints")
	}
	if in.Float64() != in.Floats[types.F64] {
		t.Fatal("Float64() should be the F64 entry of Floats")
	}
}

func TestInternDeduplicatesIdenticalKinds(t *testing.T) {
	in := types.NewInterner()
	a := in.Intern(types.TyKind{Tag: types.KindFnDef, FnDef: defs.DefId{Stelo: 0, Index: 3}})
	b := in.Intern(types.TyKind{Tag: types.KindFnDef, FnDef: defs.DefId{Stelo: 0, Index: 3}})
	if a != b {
		t.Fatal("interning the same TyKind twice should return the same Ty")
	}
	c := in.Intern(types.TyKind{Tag: types.KindFnDef, FnDef: defs.DefId{Stelo: 0, Index: 4}})
	if a == c {
		t.Fatal("distinct FnDef kinds should not share a Ty")
	}
}

func TestInferVariablesOfDifferentKindsAreDistinctTys(t *testing.T) {
	in := types.NewInterner()
	tyVar := in.Intern(types.TyKind{Tag: types.KindInfer, Infer: types.InferTy{Kind: types.InferTyVar, TyVar: 1}})
	intVar := in.Intern(types.TyKind{Tag: types.KindInfer, Infer: types.InferTy{Kind: types.InferIntVar, IntVar: 1}})
	if tyVar == intVar {
		t.Fatal("a TyVar(1) and an IntVar(1) must not collide to the same Ty")
	}
	if !in.HasInferVars(tyVar) {
		t.Fatal("an Infer-kinded Ty should report HasInferVars")
	}
}

func TestErrorTypeIsMarked(t *testing.T) {
	in := types.NewInterner()
	errTy := in.Intern(types.TyKind{Tag: types.KindError})
	if !in.IsError(errTy) {
		t.Fatal("a KindError Ty should report IsError")
	}
	if in.IsError(in.Bool) {
		t.Fatal("Bool should not report IsError")
	}
}

func TestTupleFlagsInheritFromElements(t *testing.T) {
	in := types.NewInterner()
	infer := in.Intern(types.TyKind{Tag: types.KindInfer, Infer: types.InferTy{Kind: types.InferTyVar, TyVar: 0}})
	tuple := in.Intern(types.TyKind{Tag: types.KindTuple, Tuple: []types.Ty{in.Bool, infer}})
	if !in.HasInferVars(tuple) {
		t.Fatal("a tuple containing an Infer element should itself report HasInferVars")
	}
}
