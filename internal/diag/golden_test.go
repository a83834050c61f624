package diag_test

import (
	"testing"

	"stelaro/internal/diag"
	"stelaro/internal/source"
)

func lineOf(fs *source.FileSet) func(*diag.Diagnostic) uint32 {
	return func(d *diag.Diagnostic) uint32 {
		start, _ := fs.Resolve(d.Primary)
		return start.Line
	}
}

func TestFormatGoldenDiagnosticsSortsByLineThenCode(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.stelo", []byte("a\nb\nc\n"))

	bag := diag.NewBag(8)
	bag.Add(&diag.Diagnostic{Severity: diag.SevError, Code: diag.TypeMismatch, Message: "second", Primary: source.Span{File: id, Start: 2, End: 3}})
	bag.Add(&diag.Diagnostic{Severity: diag.SevWarning, Code: diag.TypeUnreachableCode, Message: "first", Primary: source.Span{File: id, Start: 0, End: 1}})

	got := diag.FormatGoldenDiagnostics(bag, lineOf(fs))
	want := "1:WARNING:E0910: first\n2:ERROR:E0900: second"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGoldenFixtureRoundTripsThroughMsgpack(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.stelo", []byte("a\n"))

	bag := diag.NewBag(8)
	bag.Add(&diag.Diagnostic{Severity: diag.SevError, Code: diag.TypeMismatch, Message: "oops", Primary: source.Span{File: id, Start: 0, End: 1}})

	goldens := diag.ToGoldenDiagnostics(bag, lineOf(fs))
	encoded, err := diag.EncodeGoldenFixture(goldens)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := diag.DecodeGoldenFixture(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != goldens[0] {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, goldens)
	}
}
