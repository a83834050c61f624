package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// GoldenDiagnostic is the stable, sortable shape a test fixture compares
// against — deliberately narrower than Diagnostic (no Span byte offsets,
// which shift if an unrelated earlier line changes) so a golden file only
// breaks when the reported line/severity/code/message actually changes.
type GoldenDiagnostic struct {
	Line     uint32 `msgpack:"line"`
	Severity string `msgpack:"severity"`
	Code     string `msgpack:"code"`
	Message  string `msgpack:"message"`
}

// FormatGoldenDiagnostics renders bag's diagnostics as one line per
// diagnostic, sorted by line then code, for a stable comparison a test can
// assert against directly without touching *Diagnostic structs at all.
// lineOf resolves a diagnostic's primary span to its 1-based source line
// (callers pass source.FileSet.Resolve).
func FormatGoldenDiagnostics(bag *Bag, lineOf func(d *Diagnostic) uint32) string {
	goldens := ToGoldenDiagnostics(bag, lineOf)
	lines := make([]string, len(goldens))
	for i, g := range goldens {
		lines[i] = fmt.Sprintf("%d:%s:%s: %s", g.Line, g.Severity, g.Code, g.Message)
	}
	return strings.Join(lines, "\n")
}

// ToGoldenDiagnostics converts bag into a sorted slice of GoldenDiagnostic,
// the msgpack-encodable fixture shape golden_test.go round-trips.
func ToGoldenDiagnostics(bag *Bag, lineOf func(d *Diagnostic) uint32) []GoldenDiagnostic {
	items := bag.Items()
	goldens := make([]GoldenDiagnostic, len(items))
	for i, d := range items {
		goldens[i] = GoldenDiagnostic{
			Line:     lineOf(d),
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
		}
	}
	sort.SliceStable(goldens, func(i, j int) bool {
		if goldens[i].Line != goldens[j].Line {
			return goldens[i].Line < goldens[j].Line
		}
		return goldens[i].Code < goldens[j].Code
	})
	return goldens
}

// EncodeGoldenFixture msgpack-encodes a set of golden diagnostics for
// storage as a test fixture.
func EncodeGoldenFixture(goldens []GoldenDiagnostic) ([]byte, error) {
	return msgpack.Marshal(goldens)
}

// DecodeGoldenFixture reverses EncodeGoldenFixture.
func DecodeGoldenFixture(data []byte) ([]GoldenDiagnostic, error) {
	var goldens []GoldenDiagnostic
	if err := msgpack.Unmarshal(data, &goldens); err != nil {
		return nil, err
	}
	return goldens, nil
}
