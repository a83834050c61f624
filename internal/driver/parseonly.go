package driver

import (
	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/lexer"
	"stelaro/internal/parser"
	"stelaro/internal/source"
)

// ParseResult is the AST produced by running the lexer and parser alone,
// without lowering or resolving — what `stelaro parse` dumps.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Stelo   *ast.Stelo
	Bag     *diag.Bag
}

// ParseOnly lexes and parses the input named by cfg.Input, stopping short
// of lowering and resolution. As with Tokenize, no symbol session is
// installed here: the returned *ast.Stelo holds interned Symbol idents the
// caller still needs to print.
func ParseOnly(cfg Config, loader FileLoader) (*ParseResult, error) {
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

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, reporter)
	builder := ast.NewBuilder()
	stelo := parser.ParseStelo(lx, builder, parser.Options{Reporter: reporter})

	return &ParseResult{FileSet: fs, File: file, Stelo: stelo, Bag: bag}, nil
}
