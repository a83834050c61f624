// Package parser implements a recursive-descent parser with Pratt
// expression parsing over the token stream produced by internal/lexer,
// building an internal/ast tree.
package parser

import (
	"slices"

	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/lexer"
	"stelaro/internal/source"
	"stelaro/internal/token"
)

// Options configures a parse.
type Options struct {
	Reporter diag.Reporter
	// MaxErrors stops emitting diagnostics once reached; 0 means unlimited.
	MaxErrors uint
}

// Parser holds per-file parsing state: the token stream and the shared
// node builder.
type Parser struct {
	lx   *lexer.Lexer
	b    *ast.Builder
	opts Options

	tok      token.Token // current lookahead token
	prevSpan source.Span // span of the last consumed token

	errCount uint
}

// New creates a Parser over lx, building nodes into b.
func New(lx *lexer.Lexer, b *ast.Builder, opts Options) *Parser {
	p := &Parser{lx: lx, b: b, opts: opts}
	p.tok = p.lx.Next()
	return p
}

// ParseStelo parses an entire file into a Stelo: zero or more top-level
// items followed by EOF.
func ParseStelo(lx *lexer.Lexer, b *ast.Builder, opts Options) *ast.Stelo {
	p := New(lx, b, opts)
	start := p.tok.Span

	var items []*ast.Item
	for p.tok.Kind != token.EOF {
		before := p.tok
		if item, ok := p.parseItem(); ok {
			items = append(items, item)
		} else {
			p.resyncTop()
		}
		if p.tok.Kind != token.EOF && p.tok.Kind == before.Kind && p.tok.Span == before.Span {
			p.bump()
		}
	}

	end := p.prevSpan
	span := start
	if end.End > span.Start {
		span = start.Cover(end)
	}
	return p.b.NewStelo(span, items)
}

// bump consumes the current token and returns it, advancing the lookahead.
func (p *Parser) bump() token.Token {
	tok := p.tok
	if tok.Kind != token.EOF {
		p.prevSpan = tok.Span
	}
	p.tok = p.lx.Next()
	return tok
}

func (p *Parser) at(k token.Kind) bool { return p.tok.Kind == k }

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.tok.Kind)
}

// errSpan returns the best span to anchor a diagnostic at: the current
// token's span, or the position right after the previous token when the
// current token is EOF (so "expected X" at end-of-file doesn't point at an
// empty span with no visible location).
func (p *Parser) errSpan() source.Span {
	if p.tok.Kind == token.EOF {
		return p.prevSpan.ZeroideToEnd()
	}
	return p.tok.Span
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	p.errCount++
	if p.opts.MaxErrors != 0 && p.errCount > p.opts.MaxErrors {
		return
	}
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.errSpan(), msg)
}

// expect consumes a token of kind k, or reports code/msg and leaves the
// lookahead untouched.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.bump(), true
	}
	p.err(code, msg)
	return token.Token{}, false
}

// resyncTop skips tokens until a semicolon (consumed) or an `fn` keyword,
// so one malformed item doesn't derail the whole file.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.bump()
			return
		}
		if p.at(token.KwFn) {
			return
		}
		p.bump()
	}
}

// resyncStmt skips tokens until a semicolon (consumed), a closing brace
// (left for the caller), or a token that can start a new statement.
func (p *Parser) resyncStmt() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.Semicolon:
			if depth == 0 {
				p.bump()
				return
			}
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		default:
			if depth == 0 && isStmtStarter(p.tok.Kind) {
				return
			}
		}
		p.bump()
	}
}

func isStmtStarter(k token.Kind) bool {
	switch k {
	case token.KwLet, token.KwReturn, token.KwWhile, token.KwIf, token.KwPrint, token.LBrace:
		return true
	default:
		return false
	}
}
