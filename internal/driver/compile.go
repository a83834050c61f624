package driver

import (
	"fmt"
	"os"

	"stelaro/internal/ast"
	"stelaro/internal/check"
	"stelaro/internal/defs"
	"stelaro/internal/diag"
	"stelaro/internal/lexer"
	"stelaro/internal/lower"
	"stelaro/internal/observ"
	"stelaro/internal/parser"
	"stelaro/internal/resolve"
	"stelaro/internal/sir"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
	"stelaro/internal/types"
)

// OSFileLoader reads source files straight off disk.
type OSFileLoader struct{}

func (OSFileLoader) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return string(data), nil
}

// Result is everything a Compile run produces: the lowered crate (nil if
// parsing or resolution failed first), one TypeckResults per function, the
// accumulated diagnostics and the FileSet needed to resolve their spans,
// and the phase timing report.
type Result struct {
	Crate   *sir.Crate
	Types   map[defs.LocalDefId]*check.TypeckResults
	Bag     *diag.Bag
	FileSet *source.FileSet
	Timings observ.Report
}

// Compile runs lex -> parse -> resolve -> lower -> check over cfg.Input,
// reporting diagnostics to emitter and aborting before resolution, before
// lowering, and before checking once HasErrors() trips — mirroring the "ordering"
// discipline every phase boundary in this pipeline follows: never hand a
// later pass an AST/SIR built from input the earlier pass already gave up
// on.
//
// symbol.InstallSession/TeardownSession bracket the call so every phase
// shares one process-wide interner, matching the thread-local discipline
// lexing through checking assume.
func Compile(cfg Config, loader FileLoader, emitter diag.Emitter) (res *Result, err error) {
	symbol.InstallSession(symbol.New())
	defer symbol.TeardownSession()

	timer := observ.NewTimer()
	maxDiagnostics := cfg.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}

	fs := source.NewFileSet()
	fileID, err := loadInput(fs, cfg.Input, loader)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	steloName := steloNameFor(cfg.Input)

	dcx := diag.NewDiagCtxt(maxDiagnostics, emitter)
	dcxHandle := dcx.Handle()

	// A fatal diagnostic unwinds the running phase; it is caught here and
	// turned into a failed Result carrying the diagnostics so far.
	caught := false
	defer func() {
		if caught {
			res, err = &Result{Bag: dcx.Bag(), FileSet: fs, Timings: timer.Report()}, nil
		}
	}()
	defer dcxHandle.Recover(&caught)

	lexIdx := timer.Begin("lex")
	bagReporter := diag.BagReporter{Bag: dcx.Bag()}
	lx := lexer.New(file, bagReporter)
	timer.End(lexIdx, "")

	parseIdx := timer.Begin("parse")
	builder := ast.NewBuilder()
	stelo := parser.ParseStelo(lx, builder, parser.Options{Reporter: bagReporter})
	timer.End(parseIdx, "")
	// The lexer and parser report straight into the Bag, so their
	// diagnostics are passed on to emitter here.
	if emitter != nil {
		for _, d := range dcx.Bag().Items() {
			emitter.Emit(*d)
		}
	}
	if dcxHandle.HasErrors() {
		return &Result{Bag: dcx.Bag(), FileSet: fs, Timings: timer.Report()}, nil
	}

	resolveIdx := timer.Begin("resolve")
	result := resolve.Resolve(dcxHandle, steloName, stelo)
	timer.End(resolveIdx, "")
	if dcxHandle.HasErrors() {
		return &Result{Bag: dcx.Bag(), FileSet: fs, Timings: timer.Report()}, nil
	}

	lowerIdx := timer.Begin("lower")
	crate := lower.Lower(dcxHandle, result, stelo)
	timer.End(lowerIdx, "")
	if dcxHandle.HasErrors() {
		return &Result{Crate: crate, Bag: dcx.Bag(), FileSet: fs, Timings: timer.Report()}, nil
	}

	checkIdx := timer.Begin("check")
	in := types.NewInterner()
	typeckResults := check.Check(dcxHandle, in, crate, result)
	timer.End(checkIdx, "")

	return &Result{Crate: crate, Types: typeckResults, Bag: dcx.Bag(), FileSet: fs, Timings: timer.Report()}, nil
}

func loadInput(fs *source.FileSet, in InputSpec, loader FileLoader) (source.FileID, error) {
	if in.IsFile() {
		if loader == nil {
			loader = OSFileLoader{}
		}
		body, err := loader.Load(in.Path)
		if err != nil {
			return 0, err
		}
		return fs.AddVirtual(in.Path, []byte(body)), nil
	}
	return fs.AddVirtual(in.Name, []byte(in.Body)), nil
}

func steloNameFor(in InputSpec) string {
	if in.IsFile() {
		base := in.Path
		for i := len(base) - 1; i >= 0; i-- {
			if base[i] == '/' || base[i] == '\\' {
				base = base[i+1:]
				break
			}
		}
		for i := len(base) - 1; i >= 0; i-- {
			if base[i] == '.' {
				return base[:i]
			}
		}
		return base
	}
	if in.Name != "" {
		return in.Name
	}
	return "main"
}
