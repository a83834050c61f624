package check_test

import (
	"os"
	"testing"

	"stelaro/internal/ast"
	"stelaro/internal/check"
	"stelaro/internal/defs"
	"stelaro/internal/diag"
	"stelaro/internal/lexer"
	"stelaro/internal/lower"
	"stelaro/internal/parser"
	"stelaro/internal/resolve"
	"stelaro/internal/sir"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
	"stelaro/internal/types"
)

func TestMain(m *testing.M) {
	symbol.InstallSession(symbol.New())
	code := m.Run()
	symbol.TeardownSession()
	os.Exit(code)
}

func checkSrc(t *testing.T, src string) (map[defs.LocalDefId]*check.TypeckResults, *types.Interner, resolve.Result, *sir.Crate, *diag.Bag) {
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
	if dcx.Bag().HasErrors() {
		t.Fatalf("unexpected resolve/lower errors: %v", dcx.Bag().Items())
	}

	in := types.NewInterner()
	results := check.Check(dcx.Handle(), in, crate, result)
	return results, in, result, crate, dcx.Bag()
}

func firstFunctionDef(t *testing.T, crate *sir.Crate, result resolve.Result) defs.LocalDefId {
	t.Helper()
	for i := 0; i < result.Table.Len(); i++ {
		def := defs.LocalDefId(i)
		if _, ok := crate.AccessOwner(def).Bodies.Get(sir.Zero); ok {
			return def
		}
	}
	t.Fatal("no function definition found")
	return 0
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestCheckIntLiteralDefaultsToDeclaredReturnType(t *testing.T) {
	results, in, result, crate, bag := checkSrc(t, "fn main() -> i32 { return 1 + 2; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	def := firstFunctionDef(t, crate, result)
	region := crate.AccessOwner(def)

	var addID sir.ItemLocalId = sir.MaxItemLocalId
	for i := 0; i < region.Nodes.Len(); i++ {
		if region.Nodes.Get(sir.ItemLocalId(i)).Node.Kind == sir.NodeExprBinary {
			addID = sir.ItemLocalId(i)
		}
	}
	if addID == sir.MaxItemLocalId {
		t.Fatal("expected a binary expression node")
	}
	ty, ok := results[def].NodeTypes[addID]
	if !ok {
		t.Fatal("binary expression has no recorded type")
	}
	if ty != in.Ints[types.I32] {
		t.Fatalf("expected 1 + 2 to default to i32, got %v", in.Kind(ty))
	}
}

func TestCheckLetBindingUnifiesWithAnnotation(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() { let x: i32 = 1; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
}

func TestCheckReportsTypeMismatchOnWrongReturnValue(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() -> i32 { return true; }")
	if !hasCode(bag, diag.TypeMismatch) {
		t.Fatalf("expected a type mismatch diagnostic, got: %v", bag.Items())
	}
}

func TestCheckReportsMissingReturnWhenBodyHasNoTailOrReturn(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() -> i32 { let x: i32 = 1; }")
	if !hasCode(bag, diag.TypeMissingReturn) {
		t.Fatalf("expected a missing-return diagnostic, got: %v", bag.Items())
	}
}

func TestCheckTailExpressionSatisfiesDeclaredReturnType(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() -> i32 { 1 + 2 }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
}

func TestCheckIfBranchesUnifyToACommonType(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn f(x: bool) -> i32 { if x { 1 } else { 2 } }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
}

func TestCheckConditionMustBeBool(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() { if 1 { print 1; } }")
	if !hasCode(bag, diag.TypeMismatch) {
		t.Fatalf("expected an int condition to be rejected, got: %v", bag.Items())
	}
}

func TestCheckCallArityMismatchIsReported(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn add(a: i32, b: i32) -> i32 { return a + b; } fn main() { add(1); }")
	if !hasCode(bag, diag.TypeWrongArgCount) {
		t.Fatalf("expected a wrong-arg-count diagnostic, got: %v", bag.Items())
	}
}

func TestCheckCallArgumentTypeIsCheckedAgainstSignature(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn add(a: i32, b: i32) -> i32 { return a + b; } fn main() { add(true, 2); }")
	if !hasCode(bag, diag.TypeMismatch) {
		t.Fatalf("expected a type mismatch on the bool argument, got: %v", bag.Items())
	}
}

func TestCheckResolvesLocalParameterReference(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn add(a: i32, b: i32) -> i32 { return a + b; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
}

func TestCheckUnreachableStatementAfterReturnWarns(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() { return; print 1; }")
	if !hasCode(bag, diag.TypeUnreachableCode) {
		t.Fatalf("expected an unreachable-code warning, got: %v", bag.Items())
	}
}

func TestCheckCodeAfterIfWithOnlyOneDivergingArmIsReachable(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() { if true { return; }; print 1; }")
	if hasCode(bag, diag.TypeUnreachableCode) {
		t.Fatalf("code after a single-arm diverging if should still be reachable, got: %v", bag.Items())
	}
}

func TestCheckNullLiteralIsNotYetSupported(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() { let x = null; }")
	if !hasCode(bag, diag.TypeNullNotSupported) {
		t.Fatalf("expected a null-not-supported diagnostic, got: %v", bag.Items())
	}
}

func TestCheckUnaryNegRequiresNumericOperand(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() { let x = -true; }")
	if !hasCode(bag, diag.TypeInvalidUnaryOp) {
		t.Fatalf("expected an invalid-unary-op diagnostic, got: %v", bag.Items())
	}
}

func TestCheckNotCallableExpressionIsReported(t *testing.T) {
	_, _, _, _, bag := checkSrc(t, "fn main() { let x: i32 = 1; x(); }")
	if !hasCode(bag, diag.TypeNotCallable) {
		t.Fatalf("expected a not-callable diagnostic, got: %v", bag.Items())
	}
}

func TestCheckGoldenDiagnosticsForMultipleErrorsInOneFile(t *testing.T) {
	fs := source.NewFileSet()
	src := "fn main() -> i32 {\n" +
		"    let x = -true;\n" +
		"    return true;\n" +
		"}\n"
	id := fs.AddVirtual("golden.stelo", []byte(src))
	f := fs.Get(id)

	bag := diag.NewBag(64)
	lx := lexer.New(f, diag.BagReporter{Bag: bag})
	b := ast.NewBuilder()
	stelo := parser.ParseStelo(lx, b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}

	dcx := diag.NewDiagCtxt(64, nil)
	result := resolve.Resolve(dcx.Handle(), "golden", stelo)
	crate := lower.Lower(dcx.Handle(), result, stelo)
	in := types.NewInterner()
	check.Check(dcx.Handle(), in, crate, result)

	lineOf := func(d *diag.Diagnostic) uint32 {
		start, _ := fs.Resolve(d.Primary)
		return start.Line
	}
	got := diag.FormatGoldenDiagnostics(dcx.Bag(), lineOf)
	want := "2:ERROR:E0902: unary `-` requires a numeric operand\n" +
		"3:ERROR:E0900: expected i32, found bool"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
