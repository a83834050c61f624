package parser

import (
	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/token"
)

// parseBlockExpr parses `{ stmts... tail? }`. The last statement is the
// block's tail expression iff it has no trailing semicolon and is not
// itself one of the semicolon-terminated statement forms.
func (p *Parser) parseBlockExpr() (*ast.Expr, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return nil, false
	}

	var stmts []ast.Stmt
	var tail *ast.Expr

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, tailExpr, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
			continue
		}
		if tailExpr != nil {
			tail = tailExpr
			break
		}
		stmts = append(stmts, *stmt)
	}

	close, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close block")
	if !ok {
		return nil, false
	}
	return p.b.NewBlockExpr(open.Span.Cover(close.Span), stmts, tail), true
}

// parseStmt parses one statement. It returns either a *ast.Stmt (the usual
// case) or, when a bare expression is immediately followed by '}', a tail
// expression instead — the caller is responsible for recognizing the tail
// case and stopping the block.
func (p *Parser) parseStmt() (*ast.Stmt, *ast.Expr, bool) {
	switch p.tok.Kind {
	case token.KwLet:
		s, ok := p.parseLetStmt()
		return s, nil, ok
	case token.KwWhile:
		s, ok := p.parseWhileStmt()
		return s, nil, ok
	case token.KwReturn:
		s, ok := p.parseReturnStmt()
		return s, nil, ok
	case token.KwPrint:
		s, ok := p.parsePrintStmt()
		return s, nil, ok
	default:
		return p.parseExprOrSemiStmt()
	}
}

func (p *Parser) parseLetStmt() (*ast.Stmt, bool) {
	kw := p.bump() // 'let'
	pat, ok := p.parsePattern()
	if !ok {
		return nil, false
	}

	var ty *ast.Type
	if p.at(token.Colon) {
		p.bump()
		ty, ok = p.parseType()
		if !ok {
			return nil, false
		}
	}

	var init *ast.Expr
	if p.at(token.Eq) {
		p.bump()
		init, ok = p.parseExpr(precAssign)
		if !ok {
			return nil, false
		}
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after let binding")
	if !ok {
		return nil, false
	}

	span := kw.Span.Cover(semi.Span)
	local := p.b.NewLocal(span, pat, ty, init)
	return p.b.NewLetStmt(span, local), true
}

func (p *Parser) parseWhileStmt() (*ast.Stmt, bool) {
	kw := p.bump() // 'while'
	cond, ok := p.parseExpr(precAssign)
	if !ok {
		return nil, false
	}
	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected '{' to begin the loop body")
		return nil, false
	}
	body, ok := p.parseBlockExpr()
	if !ok {
		return nil, false
	}
	return p.b.NewWhileStmt(kw.Span.Cover(body.Span), cond, body), true
}

func (p *Parser) parseReturnStmt() (*ast.Stmt, bool) {
	kw := p.bump() // 'return'
	var value *ast.Expr
	if !p.at(token.Semicolon) {
		var ok bool
		value, ok = p.parseExpr(precAssign)
		if !ok {
			return nil, false
		}
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return")
	if !ok {
		return nil, false
	}
	return p.b.NewReturnStmt(kw.Span.Cover(semi.Span), value), true
}

func (p *Parser) parsePrintStmt() (*ast.Stmt, bool) {
	kw := p.bump() // 'print'
	value, ok := p.parseExpr(precAssign)
	if !ok {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after print")
	if !ok {
		return nil, false
	}
	return p.b.NewPrintStmt(kw.Span.Cover(semi.Span), value), true
}

// parseExprOrSemiStmt parses a bare expression statement: `Semi` if
// terminated by ';', or a tail expression if immediately followed by the
// block's closing '}'. Absence of both is a missing-semicolon error.
func (p *Parser) parseExprOrSemiStmt() (*ast.Stmt, *ast.Expr, bool) {
	e, ok := p.parseExpr(precAssign)
	if !ok {
		return nil, nil, false
	}
	if p.at(token.Semicolon) {
		semi := p.bump()
		return p.b.NewSemiStmt(e.Span.Cover(semi.Span), e), nil, true
	}
	if p.at(token.RBrace) {
		return nil, e, true
	}
	p.err(diag.SynExpectSemicolon, "expected ';' after expression")
	return nil, nil, false
}
