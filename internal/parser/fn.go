package parser

import (
	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/symbol"
	"stelaro/internal/token"
)

// parseItem parses one top-level (or module-nested) item: either `fn` or
// an inline `mod`.
func (p *Parser) parseItem() (*ast.Item, bool) {
	switch p.tok.Kind {
	case token.KwFn:
		return p.parseFnItem()
	case token.Ident:
		if p.tok.Symbol == modKeyword {
			return p.parseModItem()
		}
	}
	p.err(diag.SynUnexpectedToken, "expected an item")
	return nil, false
}

// modKeyword names the inline-module keyword. It is not part of the fixed
// keyword table lexed by internal/lexer (which only knows the 11 keywords
// named in the grammar); modules are an item production layered on top,
// recognized by comparing the identifier's interned spelling.
var modKeyword = symbol.Intern("mod")

func (p *Parser) parseModItem() (*ast.Item, bool) {
	kw := p.bump() // 'mod'
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a module name")
	if !ok {
		return nil, false
	}
	if name.Symbol == symbol.Wildcard {
		p.err(diag.SynExpectIdentifier, "'_' cannot be used as a module name")
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to begin a module body"); !ok {
		return nil, false
	}
	var items []*ast.Item
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if item, ok := p.parseItem(); ok {
			items = append(items, item)
		} else {
			p.resyncTop()
		}
	}
	closing, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close module body")
	if !ok {
		return nil, false
	}
	span := kw.Span.Cover(closing.Span)
	return p.b.NewModItem(span, name.Symbol, items), true
}

func (p *Parser) parseFnItem() (*ast.Item, bool) {
	kw := p.bump() // 'fn'
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a function name")
	if !ok {
		return nil, false
	}
	if name.Symbol == symbol.Wildcard {
		p.err(diag.SynExpectIdentifier, "'_' cannot be used as a function name")
		return nil, false
	}

	sigStart, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to begin a parameter list")
	if !ok {
		return nil, false
	}
	params, ok := p.parseFnParams()
	if !ok {
		return nil, false
	}
	closeParen, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close the parameter list")
	if !ok {
		return nil, false
	}

	retTy := ast.FnRetTy{Kind: ast.FnRetDefault}
	if p.at(token.Arrow) {
		p.bump()
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		retTy = ast.FnRetTy{Kind: ast.FnRetExplicit, Ty: ty}
	}

	sig := &ast.FnSig{Span: sigStart.Span.Cover(closeParen.Span), Params: params, RetTy: retTy}

	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected a function body")
		return nil, false
	}
	body, ok := p.parseBlockExpr()
	if !ok {
		return nil, false
	}

	return p.b.NewFunctionItem(kw.Span.Cover(body.Span), name.Symbol, sig, body), true
}

// parseFnParams parses a comma-separated parameter list, allowing a
// trailing comma, up to (but not consuming) the closing ')'.
func (p *Parser) parseFnParams() ([]*ast.FnParam, bool) {
	var params []*ast.FnParam
	if p.at(token.RParen) {
		return params, true
	}
	for {
		start := p.tok.Span
		pat, ok := p.parsePattern()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectToken, "expected ':' followed by a parameter type"); !ok {
			return nil, false
		}
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		params = append(params, p.b.NewFnParam(start.Cover(ty.Span), pat, ty))
		if p.at(token.Comma) {
			p.bump()
			if p.at(token.RParen) {
				break
			}
			continue
		}
		break
	}
	return params, true
}

// parsePattern parses a `let`-binding or parameter pattern: `_` or an
// identifier.
func (p *Parser) parsePattern() (*ast.Pattern, bool) {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an identifier or '_'")
	if !ok {
		return nil, false
	}
	if tok.Symbol == symbol.Wildcard {
		return p.b.NewPattern(tok.Span, ast.PatWildcard, symbol.Wildcard), true
	}
	return p.b.NewPattern(tok.Span, ast.PatIdent, tok.Symbol), true
}
