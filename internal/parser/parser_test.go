package parser

import (
	"os"
	"testing"

	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/lexer"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

func TestMain(m *testing.M) {
	symbol.InstallSession(symbol.New())
	code := m.Run()
	symbol.TeardownSession()
	os.Exit(code)
}

func parseSrc(t *testing.T, src string) (*ast.Stelo, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.stelo", []byte(src))
	f := fs.Get(id)

	bag := diag.NewBag(64)
	lx := lexer.New(f, diag.BagReporter{Bag: bag})
	b := ast.NewBuilder()
	stelo := ParseStelo(lx, b, Options{Reporter: diag.BagReporter{Bag: bag}})
	return stelo, bag
}

func TestParseEmptyFunction(t *testing.T) {
	stelo, bag := parseSrc(t, "fn main() {}")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(stelo.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(stelo.Items))
	}
	fn := stelo.Items[0]
	if fn.Kind != ast.ItemFunction {
		t.Fatalf("Kind = %v, want ItemFunction", fn.Kind)
	}
	if fn.Ident != symbol.Intern("main") {
		t.Fatal("function name mismatch")
	}
	if len(fn.Sig.Params) != 0 {
		t.Fatalf("len(Params) = %d, want 0", len(fn.Sig.Params))
	}
	if fn.Sig.RetTy.Kind != ast.FnRetDefault {
		t.Fatalf("RetTy.Kind = %v, want FnRetDefault", fn.Sig.RetTy.Kind)
	}
	if fn.Body.Kind != ast.ExprBlock || len(fn.Body.Stmts) != 0 || fn.Body.Tail != nil {
		t.Fatal("expected an empty block body")
	}
}

func TestParseFunctionWithParamsAndReturnType(t *testing.T) {
	stelo, bag := parseSrc(t, "fn add(a: i32, b: i32) -> i32 { return a + b; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := stelo.Items[0]
	if len(fn.Sig.Params) != 2 {
		t.Fatalf("len(Params) = %d, want 2", len(fn.Sig.Params))
	}
	if fn.Sig.RetTy.Kind != ast.FnRetExplicit {
		t.Fatal("expected an explicit return type")
	}
	if len(fn.Body.Stmts) != 1 || fn.Body.Stmts[0].Kind != ast.StmtReturn {
		t.Fatal("expected a single return statement")
	}
	ret := fn.Body.Stmts[0].Value
	if ret.Kind != ast.ExprBinary || ret.Op != ast.BinAdd {
		t.Fatal("expected the return value to be an addition")
	}
}

func TestParseFatArrowSynonym(t *testing.T) {
	stelo, bag := parseSrc(t, "fn main() => i32 { return 0; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := stelo.Items[0]
	if fn.Sig.RetTy.Kind != ast.FnRetExplicit {
		t.Fatal("expected '=>' to be accepted as a return-type arrow")
	}
}

func TestParseLetWithTypeAndInit(t *testing.T) {
	stelo, bag := parseSrc(t, "fn main() { let x: i32 = 1; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	body := stelo.Items[0].Body
	if len(body.Stmts) != 1 || body.Stmts[0].Kind != ast.StmtLet {
		t.Fatal("expected a single let statement")
	}
	local := body.Stmts[0].Local
	if local.Pat.Ident != symbol.Intern("x") {
		t.Fatal("pattern ident mismatch")
	}
	if local.Ty == nil || local.Ty.Kind != ast.TypePath {
		t.Fatal("expected an explicit type annotation")
	}
	if local.Init == nil || local.Init.Kind != ast.ExprLit {
		t.Fatal("expected an initializer")
	}
}

func TestParseWhileLoop(t *testing.T) {
	stelo, bag := parseSrc(t, "fn main() { while true { print 1; } }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	stmt := stelo.Items[0].Body.Stmts[0]
	if stmt.Kind != ast.StmtWhile {
		t.Fatalf("Kind = %v, want StmtWhile", stmt.Kind)
	}
	if stmt.Cond.Kind != ast.ExprLit || stmt.Cond.LitKind != ast.LitBool {
		t.Fatal("expected a boolean literal condition")
	}
	if len(stmt.Body.Stmts) != 1 || stmt.Body.Stmts[0].Kind != ast.StmtPrint {
		t.Fatal("expected a print statement in the loop body")
	}
}

func TestParseIfElseExpression(t *testing.T) {
	stelo, bag := parseSrc(t, "fn main() { if true { 1; } else { 2; } }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	body := stelo.Items[0].Body
	if body.Tail == nil || body.Tail.Kind != ast.ExprIf {
		t.Fatal("expected the if-expression to be the block's tail")
	}
	ifExpr := body.Tail
	if ifExpr.Else == nil || ifExpr.Else.Kind != ast.ExprBlock {
		t.Fatal("expected an else block")
	}
}

func TestParseBlockTailExpression(t *testing.T) {
	stelo, bag := parseSrc(t, "fn main() -> i32 { let x = 1; x }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	body := stelo.Items[0].Body
	if len(body.Stmts) != 1 {
		t.Fatalf("len(Stmts) = %d, want 1", len(body.Stmts))
	}
	if body.Tail == nil || body.Tail.Kind != ast.ExprPath {
		t.Fatal("expected the trailing 'x' to be the block's tail expression")
	}
}

func TestParseCallExpression(t *testing.T) {
	stelo, bag := parseSrc(t, "fn main() { add(1, 2); }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	stmt := stelo.Items[0].Body.Stmts[0]
	if stmt.Kind != ast.StmtSemi || stmt.Expr.Kind != ast.ExprCall {
		t.Fatal("expected a call expression statement")
	}
	if len(stmt.Expr.Args) != 2 {
		t.Fatalf("len(Args) = %d, want 2", len(stmt.Expr.Args))
	}
}

func TestOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3).
	stelo, bag := parseSrc(t, "fn main() -> i32 { 1 + 2 * 3 }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	tail := stelo.Items[0].Body.Tail
	if tail.Kind != ast.ExprBinary || tail.Op != ast.BinAdd {
		t.Fatal("expected the outermost operator to be '+'")
	}
	if tail.Rhs.Kind != ast.ExprBinary || tail.Rhs.Op != ast.BinMul {
		t.Fatal("expected the right operand to be a multiplication")
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	stelo, bag := parseSrc(t, "fn main() { let a: i32; let b: i32; a = b = 1; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	stmt := stelo.Items[0].Body.Stmts[2]
	if stmt.Expr.Kind != ast.ExprAssign {
		t.Fatal("expected an assignment expression")
	}
	if stmt.Expr.RHS.Kind != ast.ExprAssign {
		t.Fatal("expected the right-hand side to itself be an assignment")
	}
}

func TestMissingSemicolonIsReported(t *testing.T) {
	_, bag := parseSrc(t, "fn main() { 1 2 }")
	if bag.Len() == 0 {
		t.Fatal("expected a missing-semicolon diagnostic")
	}
}

func TestWildcardRejectedAsFunctionName(t *testing.T) {
	_, bag := parseSrc(t, "fn _() {}")
	if bag.Len() == 0 {
		t.Fatal("expected an error rejecting '_' as a function name")
	}
}

func TestInlineModule(t *testing.T) {
	stelo, bag := parseSrc(t, "mod util { fn helper() {} }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(stelo.Items) != 1 || stelo.Items[0].Kind != ast.ItemMod {
		t.Fatal("expected a single mod item")
	}
	if len(stelo.Items[0].Items) != 1 || stelo.Items[0].Items[0].Kind != ast.ItemFunction {
		t.Fatal("expected the module to contain the nested function")
	}
}

func TestNodeIdsAreUniqueAcrossAFile(t *testing.T) {
	stelo, bag := parseSrc(t, "fn main() { let x = 1; print x; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	seen := map[ast.NodeId]bool{}
	record := func(id ast.NodeId) {
		if seen[id] {
			t.Fatalf("duplicate NodeId %d", id)
		}
		if id.IsDummy() {
			t.Fatal("dummy NodeId leaked into the parsed tree")
		}
		seen[id] = true
	}
	record(stelo.Id)
	fn := stelo.Items[0]
	record(fn.Id)
	record(fn.Body.Id)
	for _, s := range fn.Body.Stmts {
		record(s.Id)
	}
}
