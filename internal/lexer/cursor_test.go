package lexer

import (
	"testing"

	"stelaro/internal/source"
)

func newTestFile(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.stelo", []byte(content))
	return fs.Get(id)
}

func TestCursorBumpAndPeek(t *testing.T) {
	f := newTestFile(t, "ab")
	c := NewCursor(f)

	if c.EOF() {
		t.Fatal("cursor should not be EOF at start")
	}
	if got := c.Peek(); got != 'a' {
		t.Fatalf("Peek() = %q, want 'a'", got)
	}
	if got := c.Bump(); got != 'a' {
		t.Fatalf("Bump() = %q, want 'a'", got)
	}
	if got := c.Peek(); got != 'b' {
		t.Fatalf("Peek() = %q, want 'b'", got)
	}
	c.Bump()
	if !c.EOF() {
		t.Fatal("cursor should be EOF after consuming all bytes")
	}
	if got := c.Peek(); got != 0 {
		t.Fatalf("Peek() at EOF = %q, want 0", got)
	}
}

func TestCursorPeek2(t *testing.T) {
	f := newTestFile(t, "!=")
	c := NewCursor(f)
	b0, b1, ok := c.Peek2()
	if !ok || b0 != '!' || b1 != '=' {
		t.Fatalf("Peek2() = %q %q %v, want '!' '=' true", b0, b1, ok)
	}
}

func TestCursorMarkAndReset(t *testing.T) {
	f := newTestFile(t, "hello")
	c := NewCursor(f)
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom(m) = %v, want {0 2}", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatalf("Off after Reset = %d, want 0", c.Off)
	}
}

func TestCursorEat(t *testing.T) {
	f := newTestFile(t, "::")
	c := NewCursor(f)
	if !c.Eat(':') {
		t.Fatal("Eat(':') should consume the first colon")
	}
	if !c.Eat(':') {
		t.Fatal("Eat(':') should consume the second colon")
	}
	if c.Eat(':') {
		t.Fatal("Eat(':') should fail at EOF")
	}
}
