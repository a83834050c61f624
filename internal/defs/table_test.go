package defs

import (
	"os"
	"testing"

	"stelaro/internal/diag"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

func TestMain(m *testing.M) {
	symbol.InstallSession(symbol.New())
	code := m.Run()
	symbol.TeardownSession()
	os.Exit(code)
}

func newTable() *DefPathTable {
	return NewDefPathTable(NewStableSteloId("test"))
}

func TestRootDefIsPreseeded(t *testing.T) {
	tbl := newTable()
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}
	key := tbl.DefKey(SteloRootDef)
	if key.HasParent {
		t.Fatal("root definition must have no parent")
	}
	if key.Data.Kind != SteloRoot {
		t.Fatalf("root Data.Kind = %v, want SteloRoot", key.Data.Kind)
	}
}

func TestCreateDefAssignsDistinctLocalDefIds(t *testing.T) {
	tbl := newTable()
	dcx := diag.NewDiagCtxt(16, nil).Handle()
	sp := source.Span{}

	foo := tbl.CreateDef(dcx, sp, DefIndex(SteloRootDef), NewValueNsData(symbol.Intern("foo")))
	bar := tbl.CreateDef(dcx, sp, DefIndex(SteloRootDef), NewValueNsData(symbol.Intern("bar")))
	if foo == bar {
		t.Fatal("distinct definitions must get distinct LocalDefIds")
	}
	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
}

func TestCreateDefIsDeterministic(t *testing.T) {
	dcx := diag.NewDiagCtxt(16, nil).Handle()
	sp := source.Span{}

	t1 := newTable()
	id1 := t1.CreateDef(dcx, sp, DefIndex(SteloRootDef), NewValueNsData(symbol.Intern("f")))

	t2 := newTable()
	id2 := t2.CreateDef(dcx, sp, DefIndex(SteloRootDef), NewValueNsData(symbol.Intern("f")))

	if t1.DefPathHash(id1) != t2.DefPathHash(id2) {
		t.Fatal("identical DefPaths over identical stelo names must hash identically")
	}
}

func TestSameNameSiblingsGetDistinctDisambiguators(t *testing.T) {
	tbl := newTable()
	dcx := diag.NewDiagCtxt(16, nil).Handle()
	sp := source.Span{}

	mod := tbl.CreateDef(dcx, sp, DefIndex(SteloRootDef), NewTypeNsData(symbol.Intern("util")))
	a := tbl.CreateDef(dcx, sp, DefIndex(mod), NewValueNsData(symbol.Intern("helper")))
	b := tbl.CreateDef(dcx, sp, DefIndex(mod), NewValueNsData(symbol.Intern("helper")))

	if tbl.DefKey(a).Disambiguator == tbl.DefKey(b).Disambiguator {
		t.Fatal("two same-named siblings must receive distinct disambiguators")
	}
	if tbl.DefPathHash(a) == tbl.DefPathHash(b) {
		t.Fatal("distinct disambiguators must yield distinct DefPathHashes")
	}
}

func TestDefPathWalksRootToLeaf(t *testing.T) {
	tbl := newTable()
	dcx := diag.NewDiagCtxt(16, nil).Handle()
	sp := source.Span{}

	mod := tbl.CreateDef(dcx, sp, DefIndex(SteloRootDef), NewTypeNsData(symbol.Intern("util")))
	fn := tbl.CreateDef(dcx, sp, DefIndex(mod), NewValueNsData(symbol.Intern("helper")))

	path := tbl.DefPath(fn)
	if len(path) != 3 {
		t.Fatalf("len(DefPath) = %d, want 3 (root, util, helper)", len(path))
	}
	if path[0].Data.Kind != SteloRoot {
		t.Fatal("DefPath must start at the stelo root")
	}
	if path[1].Data.Kind != TypeNs || path[2].Data.Kind != ValueNs {
		t.Fatal("DefPath must preserve each segment's namespace kind in order")
	}
}

func TestLocalDefIdRoundTripsThroughDefId(t *testing.T) {
	id := LocalDefId(7)
	def := id.ToDefId()
	if def.Stelo != LocalStelo {
		t.Fatal("ToDefId must tag the local stelo")
	}
	local, ok := def.AsLocal()
	if !ok || local != id {
		t.Fatal("AsLocal must recover the original LocalDefId")
	}
}

func TestForeignDefIdIsNotLocal(t *testing.T) {
	def := DefId{Stelo: LocalStelo + 1, Index: 3}
	if _, ok := def.AsLocal(); ok {
		t.Fatal("a DefId from another stelo must not be reported as local")
	}
}
