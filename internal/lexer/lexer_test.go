package lexer

import (
	"testing"

	"stelaro/internal/diag"
	"stelaro/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	f := newTestFile(t, src)
	bag := diag.NewBag(64)
	lx := New(f, diag.BagReporter{Bag: bag})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexerPunctuationAndOperators(t *testing.T) {
	toks, bag := lexAll(t, "( ) { } , . + - * / % ; : :: != = == > >= < <=")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Comma, token.Dot, token.Plus, token.Minus, token.Star,
		token.Slash, token.Percent, token.Semicolon, token.Colon, token.ColonColon,
		token.BangEq, token.Eq, token.EqEq, token.Gt, token.GtEq, token.Lt, token.LtEq,
		token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerArrowAcceptsBothSpellings(t *testing.T) {
	for _, src := range []string{"->", "=>"} {
		toks, bag := lexAll(t, src)
		if bag.Len() != 0 {
			t.Fatalf("unexpected diagnostics for %q: %v", src, bag.Items())
		}
		if toks[0].Kind != token.Arrow {
			t.Fatalf("lexing %q: got %v, want Arrow", src, toks[0].Kind)
		}
		if toks[0].Symbol.String() != src {
			t.Fatalf("lexing %q: Symbol = %q, want %q", src, toks[0].Symbol.String(), src)
		}
	}
}

func TestLexerKeywordsAndIdents(t *testing.T) {
	toks, bag := lexAll(t, "fn main let x true false foo_bar")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []token.Kind{
		token.KwFn, token.Ident, token.KwLet, token.Ident,
		token.BoolLit, token.BoolLit, token.Ident, token.EOF,
	}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerIntAndFloatLiterals(t *testing.T) {
	toks, bag := lexAll(t, "1 2.5 100")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []token.Kind{token.IntLit, token.FloatLit, token.IntLit, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerMissingFractionalPart(t *testing.T) {
	_, bag := lexAll(t, "123.")
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", bag.Len(), bag.Items())
	}
	if bag.Items()[0].Code != diag.LexMissingFractional {
		t.Fatalf("got code %v, want LexMissingFractional", bag.Items()[0].Code)
	}
}

func TestLexerInvalidFloatFormat(t *testing.T) {
	_, bag := lexAll(t, "1.2.3")
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", bag.Len(), bag.Items())
	}
	if bag.Items()[0].Code != diag.LexInvalidFloatFormat {
		t.Fatalf("got code %v, want LexInvalidFloatFormat", bag.Items()[0].Code)
	}
}

func TestLexerStringLiteral(t *testing.T) {
	toks, bag := lexAll(t, `"hello\nworld"`)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.StringLit {
		t.Fatalf("got %v, want StringLit", toks[0].Kind)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	// Scenario: a string literal left open at a newline produces exactly
	// one lexer error, not one error per following line.
	_, bag := lexAll(t, "\"abc\nlet x = 1;")
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", bag.Len(), bag.Items())
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("got code %v, want LexUnterminatedString", bag.Items()[0].Code)
	}
}

func TestLexerInvalidEscapeSequence(t *testing.T) {
	_, bag := lexAll(t, `"bad\qescape"`)
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", bag.Len(), bag.Items())
	}
	if bag.Items()[0].Code != diag.LexInvalidEscape {
		t.Fatalf("got code %v, want LexInvalidEscape", bag.Items()[0].Code)
	}
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	_, bag := lexAll(t, "let x = @;")
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", bag.Len(), bag.Items())
	}
	if bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("got code %v, want LexUnknownChar", bag.Items()[0].Code)
	}
}

func TestLexerLineCommentIsDiscarded(t *testing.T) {
	toks, bag := lexAll(t, "let x = 1; // trailing comment\nlet y = 2;")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	for _, tok := range toks {
		if tok.Kind == token.Invalid {
			t.Fatalf("unexpected Invalid token in stream: %v", toks)
		}
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	f := newTestFile(t, "fn main")
	lx := New(f, nil)

	first := lx.Peek()
	if first.Kind != token.KwFn {
		t.Fatalf("Peek() = %v, want KwFn", first.Kind)
	}
	again := lx.Peek()
	if again.Kind != token.KwFn {
		t.Fatalf("second Peek() = %v, want KwFn", again.Kind)
	}
	next := lx.Next()
	if next.Kind != token.KwFn {
		t.Fatalf("Next() after Peek() = %v, want KwFn", next.Kind)
	}
	next = lx.Next()
	if next.Kind != token.Ident {
		t.Fatalf("Next() = %v, want Ident", next.Kind)
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	f := newTestFile(t, "")
	lx := New(f, nil)
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next() call %d = %v, want EOF", i, tok.Kind)
		}
	}
}

func TestLexerFunctionDeclarationEndToEnd(t *testing.T) {
	toks, bag := lexAll(t, "fn main() => i32 { return 1 + 2; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []token.Kind{
		token.KwFn, token.Ident, token.LParen, token.RParen, token.Arrow, token.Ident,
		token.LBrace, token.KwReturn, token.IntLit, token.Plus, token.IntLit, token.Semicolon,
		token.RBrace, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
