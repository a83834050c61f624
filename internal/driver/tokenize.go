package driver

import (
	"stelaro/internal/diag"
	"stelaro/internal/lexer"
	"stelaro/internal/source"
	"stelaro/internal/token"
)

// TokenizeResult is the token stream produced by running the lexer alone,
// without parsing — what `stelaro tokenize` dumps.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the input named by cfg.Input to completion, collecting
// every token (including the trailing EOF) and any lexer diagnostics.
//
// Unlike Compile, Tokenize does not install or tear down a symbol session:
// the returned tokens carry interned symbol.Symbol values the caller will
// still need to render (Symbol.String() reads through the active session),
// so the caller owns that session's lifetime.
func Tokenize(cfg Config, loader FileLoader) (*TokenizeResult, error) {
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
	lx := lexer.New(file, diag.BagReporter{Bag: bag})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}, nil
}
