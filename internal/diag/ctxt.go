package diag

import "stelaro/internal/source"

// Emitter receives diagnostics as they are created and renders or records
// them. TermEmitter (internal/driver) writes colorized output to a
// terminal; CollectEmitter stores them for golden-file tests.
type Emitter interface {
	Emit(d Diagnostic)
}

// CollectEmitter accumulates diagnostics silently, for use in tests that
// want to assert on the emitted set without touching a terminal.
type CollectEmitter struct {
	Diagnostics []Diagnostic
}

// NewCollectEmitter returns an empty CollectEmitter.
func NewCollectEmitter() *CollectEmitter {
	return &CollectEmitter{}
}

func (e *CollectEmitter) Emit(d Diagnostic) {
	e.Diagnostics = append(e.Diagnostics, d)
}

// ErrorGuarantee witnesses that a diagnostic of at least SevError has been
// emitted through a DiagCtxt. Functions that always bail out after
// reporting an error can return a Diag[ErrorGuarantee] instead of a raw
// error, so the type system enforces that the caller actually emitted
// something before unwinding.
type ErrorGuarantee struct{ _ struct{} }

// Diag wraps a guarantee marker G, carrying no data of its own — it exists
// purely so a function signature can say "this path only returns after a
// diagnostic guaranteed by G was emitted".
type Diag[G any] struct {
	guarantee G
}

// guarantee constructs a Diag[G] value. Callers only ever get one back
// from DiagCtxtHandle.EmitError, never construct it directly.
func guarantee[G any](g G) Diag[G] {
	return Diag[G]{guarantee: g}
}

// fatalUnwind is the panic payload used to unwind out of a phase once a
// SevFatal diagnostic has been emitted.
type fatalUnwind struct {
	Diagnostic Diagnostic
}

// DiagCtxt owns the diagnostic Bag and Emitter for one compilation session.
// Phases report through it directly (bypassing the Reporter-per-phase
// indirection) when they want fatal-unwind semantics.
type DiagCtxt struct {
	bag          *Bag
	emitter      Emitter
	sawFatal     bool
}

// NewDiagCtxt creates a DiagCtxt backed by a fresh Bag with the given
// capacity and reporting to emitter (nil disables live emission; the Bag
// still accumulates).
func NewDiagCtxt(maxDiagnostics int, emitter Emitter) *DiagCtxt {
	return &DiagCtxt{
		bag:     NewBag(maxDiagnostics),
		emitter: emitter,
	}
}

// Handle returns a DiagCtxtHandle bound to this context — the value phases
// actually pass around, distinct from the owner.
func (dcx *DiagCtxt) Handle() DiagCtxtHandle {
	return DiagCtxtHandle{dcx: dcx}
}

// Bag exposes the underlying Bag, e.g. for Sort/Dedup once a phase ends.
func (dcx *DiagCtxt) Bag() *Bag { return dcx.bag }

func (dcx *DiagCtxt) record(d Diagnostic) {
	dd := d
	dcx.bag.Add(&dd)
	if dcx.emitter != nil {
		dcx.emitter.Emit(d)
	}
}

// DiagCtxtHandle is the value threaded through lexer/parser/resolver/
// checker code; it can emit diagnostics but cannot reconfigure the
// underlying context.
type DiagCtxtHandle struct {
	dcx *DiagCtxt
}

// EmitWarning records a non-fatal, non-error diagnostic.
func (h DiagCtxtHandle) EmitWarning(code Code, primary source.Span, msg string, notes ...Note) {
	h.dcx.record(Diagnostic{Severity: SevWarning, Code: code, Primary: primary, Message: msg, Notes: notes})
}

// EmitInfo records an informational diagnostic.
func (h DiagCtxtHandle) EmitInfo(code Code, primary source.Span, msg string, notes ...Note) {
	h.dcx.record(Diagnostic{Severity: SevInfo, Code: code, Primary: primary, Message: msg, Notes: notes})
}

// EmitError records a SevError diagnostic and returns a guarantee token
// proving to the caller's caller that an error really was reported.
func (h DiagCtxtHandle) EmitError(code Code, primary source.Span, msg string, notes ...Note) Diag[ErrorGuarantee] {
	h.dcx.record(Diagnostic{Severity: SevError, Code: code, Primary: primary, Message: msg, Notes: notes})
	return guarantee(ErrorGuarantee{})
}

// EmitFatal records a SevFatal diagnostic and panics with fatalUnwind,
// unwinding the current phase. The driver recovers this at the phase
// boundary and turns it into a clean compile failure instead of a crash.
func (h DiagCtxtHandle) EmitFatal(code Code, primary source.Span, msg string, notes ...Note) {
	d := Diagnostic{Severity: SevFatal, Code: code, Primary: primary, Message: msg, Notes: notes}
	h.dcx.sawFatal = true
	h.dcx.record(d)
	panic(fatalUnwind{Diagnostic: d})
}

// HasErrors reports whether the backing Bag has accumulated any SevError
// (or SevFatal) diagnostic so far.
func (h DiagCtxtHandle) HasErrors() bool {
	return h.dcx.bag.HasErrors() || h.dcx.sawFatal
}

// Recover catches a fatalUnwind panic raised by EmitFatal and reports
// whether one occurred; any other panic value is re-raised. Callers wrap a
// phase boundary with `defer h.Recover(&caught)`.
func (h DiagCtxtHandle) Recover(caught *bool) {
	if r := recover(); r != nil {
		if _, ok := r.(fatalUnwind); ok {
			*caught = true
			return
		}
		panic(r)
	}
}
