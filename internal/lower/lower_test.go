package lower_test

import (
	"os"
	"testing"

	"stelaro/internal/ast"
	"stelaro/internal/defs"
	"stelaro/internal/diag"
	"stelaro/internal/lexer"
	"stelaro/internal/lower"
	"stelaro/internal/parser"
	"stelaro/internal/resolve"
	"stelaro/internal/sir"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

func TestMain(m *testing.M) {
	symbol.InstallSession(symbol.New())
	code := m.Run()
	symbol.TeardownSession()
	os.Exit(code)
}

func lowerSrc(t *testing.T, src string) (*sir.Crate, resolve.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.stelo", []byte(src))
	f := fs.Get(id)

	bag := diag.NewBag(64)
	lx := lexer.New(f, diag.BagReporter{Bag: bag})
	b := ast.NewBuilder()
	stelo := parser.ParseStelo(lx, b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}

	dcx := diag.NewDiagCtxt(64, nil)
	result := resolve.Resolve(dcx.Handle(), "test", stelo)
	crate := lower.Lower(dcx.Handle(), result, stelo)
	return crate, result, dcx.Bag()
}

// firstFunctionDef returns the LocalDefId of the first non-root
// definition recorded by the resolver, i.e. the sole `fn` in the tests
// below.
func firstFunctionDef(t *testing.T, result resolve.Result) defs.LocalDefId {
	t.Helper()
	for _, def := range result.NodeToDef {
		if def != defs.SteloRootDef {
			return def
		}
	}
	t.Fatal("no non-root definition found")
	return 0
}

func TestLowerLeavesNoPhantomOwners(t *testing.T) {
	crate, result, bag := lowerSrc(t, "fn main() -> i32 { return 0; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	for i := 0; i < result.Table.Len(); i++ {
		if crate.Owners.Get(defs.LocalDefId(i)).Kind != sir.OwnerPresent {
			t.Fatalf("owner slot %d is not OwnerPresent", i)
		}
	}
}

func TestLowerFunctionOwnerHasParamsAndBody(t *testing.T) {
	crate, result, bag := lowerSrc(t, "fn add(a: i32, b: i32) -> i32 { return a + b; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	def := firstFunctionDef(t, result)
	region := crate.AccessOwner(def)
	ownerNode := region.Nodes.Get(sir.Zero)
	if len(ownerNode.Node.Params) != 2 {
		t.Fatalf("expected 2 params recorded on the owner node, got %d", len(ownerNode.Node.Params))
	}
	body, ok := region.Bodies.Get(sir.Zero)
	if !ok {
		t.Fatal("expected a body recorded at local id Zero")
	}
	if body.Value == sir.MaxItemLocalId {
		t.Fatal("expected the body's block value to be set")
	}
}

func TestLowerFunctionOwnerRecordsExplicitReturnType(t *testing.T) {
	crate, result, bag := lowerSrc(t, "fn main() -> i32 { return 0; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	def := firstFunctionDef(t, result)
	region := crate.AccessOwner(def)
	ownerNode := region.Nodes.Get(sir.Zero)
	if ownerNode.Node.Ty == nil {
		t.Fatal("expected the owner node to carry the lowered return type annotation")
	}
}

func TestLowerChildParentLinksAreRecorded(t *testing.T) {
	crate, result, bag := lowerSrc(t, "fn main() { let x: i32 = 1; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	def := firstFunctionDef(t, result)
	region := crate.AccessOwner(def)

	var letID sir.ItemLocalId = sir.MaxItemLocalId
	for i := 0; i < region.Nodes.Len(); i++ {
		if region.Nodes.Get(sir.ItemLocalId(i)).Node.Kind == sir.NodeStmtLet {
			letID = sir.ItemLocalId(i)
		}
	}
	if letID == sir.MaxItemLocalId {
		t.Fatal("expected a NodeStmtLet in the function's region")
	}
	init := region.Nodes.Get(letID).Node.Init
	if init == sir.MaxItemLocalId {
		t.Fatal("expected the let's initializer to be lowered")
	}
	if region.Nodes.Get(init).Parent != letID {
		t.Fatal("the initializer's recorded parent should be the let statement")
	}
}

func TestLowerRecordsLocalBindingSirId(t *testing.T) {
	crate, result, bag := lowerSrc(t, "fn main() { let x: i32 = 1; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	def := firstFunctionDef(t, result)
	region := crate.AccessOwner(def)

	var letID sir.ItemLocalId = sir.MaxItemLocalId
	for i := 0; i < region.Nodes.Len(); i++ {
		if region.Nodes.Get(sir.ItemLocalId(i)).Node.Kind == sir.NodeStmtLet {
			letID = sir.ItemLocalId(i)
		}
	}
	if letID == sir.MaxItemLocalId {
		t.Fatal("expected a NodeStmtLet in the function's region")
	}
	if len(crate.Locals) != 1 {
		t.Fatalf("expected exactly one recorded local binding, got %d", len(crate.Locals))
	}
	for _, sirID := range crate.Locals {
		if sirID.Owner != def || sirID.LocalId != letID {
			t.Fatalf("recorded local binding %+v does not point at the let statement", sirID)
		}
	}
}

func TestLowerPrintDesugarsToIntrinsicCall(t *testing.T) {
	crate, result, bag := lowerSrc(t, "fn main() { print 1; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	def := firstFunctionDef(t, result)
	region := crate.AccessOwner(def)

	found := false
	for i := 0; i < region.Nodes.Len(); i++ {
		n := region.Nodes.Get(sir.ItemLocalId(i))
		if n.Node.Kind == sir.NodeExprCall && n.Node.Intrinsic == sir.IntrinsicPrint {
			found = true
			if len(n.Node.Args) != 1 {
				t.Fatalf("expected the print intrinsic call to carry 1 argument, got %d", len(n.Node.Args))
			}
			if n.Node.Callee != sir.MaxItemLocalId {
				t.Fatal("an intrinsic call's Callee should be the sentinel, not a lowered expression")
			}
		}
	}
	if !found {
		t.Fatal("expected `print 1;` to lower to an IntrinsicPrint call node")
	}
}

func TestLowerReportsIntLiteralOutOfRange(t *testing.T) {
	_, _, bag := lowerSrc(t, "fn main() { let x: i32 = 99999999999999999999; }")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.TypeIntLiteralOutOfRange {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an int-literal-out-of-range diagnostic")
	}
}
