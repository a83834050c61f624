package driver_test

import (
	"os"
	"testing"

	"stelaro/internal/diag"
	"stelaro/internal/driver"
	"stelaro/internal/symbol"
)

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

func compile(t *testing.T, src string) (*driver.Result, *diag.CollectEmitter) {
	t.Helper()
	emitter := diag.NewCollectEmitter()
	cfg := driver.Config{Input: driver.StrInput("test.stelo", src)}
	result, err := driver.Compile(cfg, nil, emitter)
	if err != nil {
		t.Fatalf("Compile returned an error: %v", err)
	}
	return result, emitter
}

func TestCompileSucceedsOnWellTypedProgram(t *testing.T) {
	_, emitter := compile(t, "fn main() -> i32 { return 1 + 2; }")
	for _, d := range emitter.Diagnostics {
		if d.Severity >= diag.SevError {
			t.Fatalf("unexpected diagnostic: %s", d.Message)
		}
	}
}

func TestCompileReportsLexErrorsAndStopsBeforeChecking(t *testing.T) {
	result, emitter := compile(t, "fn main() { \"unterminated }")
	found := false
	for _, d := range emitter.Diagnostics {
		if d.Code == diag.LexUnterminatedString {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an unterminated-string diagnostic, got: %v", emitter.Diagnostics)
	}
	if result.Types != nil {
		t.Fatal("expected checking to be skipped after a lex/parse error")
	}
}

func TestCompileReportsTypeErrorsFromTheCheckPhase(t *testing.T) {
	_, emitter := compile(t, "fn main() -> i32 { return true; }")
	found := false
	for _, d := range emitter.Diagnostics {
		if d.Code == diag.TypeMismatch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a type mismatch diagnostic, got: %v", emitter.Diagnostics)
	}
}

func TestCompileTearsDownSymbolSessionOnReturn(t *testing.T) {
	compile(t, "fn main() { print 1; }")
	if symbol.CurrentSession() != nil {
		t.Fatal("expected Compile to tear down the symbol session before returning")
	}
}
