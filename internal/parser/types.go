package parser

import (
	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/symbol"
	"stelaro/internal/token"
)

// parseType parses a type annotation: `_` (inference placeholder) or a
// path naming a type.
func (p *Parser) parseType() (*ast.Type, bool) {
	if p.at(token.Ident) && p.tok.Symbol == symbol.Wildcard {
		tok := p.bump()
		return p.b.NewType(tok.Span, ast.TypeInfer, nil), true
	}
	path, ok := p.parsePath()
	if !ok {
		p.err(diag.SynExpectType, "expected a type")
		return nil, false
	}
	return p.b.NewType(path.Span, ast.TypePath, path), true
}

// parsePath parses a possibly-qualified name: `ident(::ident)*`.
func (p *Parser) parsePath() (*ast.Path, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an identifier")
	if !ok {
		return nil, false
	}
	segs := []ast.PathSegment{p.b.NewPathSegment(first.Span, first.Symbol)}
	span := first.Span
	for p.at(token.ColonColon) {
		p.bump()
		seg, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an identifier after '::'")
		if !ok {
			break
		}
		segs = append(segs, p.b.NewPathSegment(seg.Span, seg.Symbol))
		span = span.Cover(seg.Span)
	}
	return &ast.Path{Span: span, Segments: segs}, true
}
