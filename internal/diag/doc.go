// Package diag defines the core diagnostic model shared by every pipeline
// phase.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     by the lexer, parser, resolver, and type checker.
//   - Offer light-weight utilities (Reporter, Bag, DiagCtxt) that let
//     producers emit diagnostics without coupling to a concrete rendering
//     or storage layer.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration; rendering
// lives behind the Emitter interface (TermEmitter, CollectEmitter) and in
// internal/driver. Fix-it suggestions are not modelled here: automated
// source repair is out of scope for this compiler.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – four-level enum (Info, Warning, Error, Fatal).
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing at the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "first defined here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. Construct
// a ReportBuilder via NewReportBuilder (or the ReportError/ReportWarning/
// ReportInfo helpers), chain WithNote, and call Emit. diag.BagReporter
// adapts a *Bag to Reporter; Bag supports sorting, deduplication,
// filtering, and transformation once a phase is done.
//
// # DiagCtxt and fatal unwinding
//
// DiagCtxt owns the active Bag plus an Emitter and tracks whether a fatal
// diagnostic has already fired: a SevFatal diagnostic is recorded and then
// panics with a sentinel, and the driver recovers it at the phase
// boundary.
package diag
