package resolve

import (
	"os"
	"testing"

	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/lexer"
	"stelaro/internal/parser"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

func TestMain(m *testing.M) {
	symbol.InstallSession(symbol.New())
	code := m.Run()
	symbol.TeardownSession()
	os.Exit(code)
}

func resolveSrc(t *testing.T, src string) (*ast.Stelo, Result, *diag.Bag) {
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
	result := Resolve(dcx.Handle(), "test", stelo)
	return stelo, result, dcx.Bag()
}

func TestFunctionParamResolvesInBody(t *testing.T) {
	_, result, bag := resolveSrc(t, "fn add(a: i32, b: i32) -> i32 { return a + b; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(result.PathRes) == 0 {
		t.Fatal("expected at least one resolved path")
	}
	for _, res := range result.PathRes {
		if res.Kind == ResErr {
			t.Fatal("no path should have failed to resolve")
		}
	}
}

func TestUnresolvedNameIsReported(t *testing.T) {
	_, _, bag := resolveSrc(t, "fn main() { let x = y; }")
	if bag.Len() == 0 {
		t.Fatal("expected an unresolved-name diagnostic")
	}
}

func TestDuplicateParameterNameIsReported(t *testing.T) {
	_, _, bag := resolveSrc(t, "fn f(a: i32, a: i32) {}")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynDuplicateIdentInParamList {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a duplicate-parameter-name diagnostic")
	}
}

func TestNameDefinedMultipleTimesIsReported(t *testing.T) {
	_, _, bag := resolveSrc(t, "fn f() {} fn f() {}")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynNameDefinedMultipleTimes {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a name-defined-multiple-times diagnostic")
	}
}

func TestFunctionCallResolvesToSibling(t *testing.T) {
	_, result, bag := resolveSrc(t, "fn helper() {} fn main() { helper(); }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	found := false
	for _, res := range result.PathRes {
		if res.Kind == ResDef && res.DefKind == DefKindFn {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the call to resolve to the sibling function definition")
	}
}

func TestInlineModuleFunctionResolvesWithinModule(t *testing.T) {
	_, result, bag := resolveSrc(t, "mod util { fn helper() { return 1; } fn caller() { helper(); } }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	found := false
	for _, res := range result.PathRes {
		if res.Kind == ResDef && res.DefKind == DefKindFn {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the in-module call to resolve")
	}
}

func TestShadowingInnerLetWins(t *testing.T) {
	_, result, bag := resolveSrc(t, "fn main() { let x: i32 = 1; if true { let x: i32 = 2; x; }; x; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	locals := 0
	for _, res := range result.PathRes {
		if res.Kind == ResLocal {
			locals++
		}
	}
	if locals != 2 {
		t.Fatalf("expected both 'x' references to resolve to locals, got %d", locals)
	}
}

func TestPrimitiveTypeNameIsNotReportedUnresolved(t *testing.T) {
	_, _, bag := resolveSrc(t, "fn main() -> i32 { return 0; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}
