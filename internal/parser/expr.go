package parser

import (
	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/token"
)

// Precedence levels, ascending, per the grammar's fixity table: Assign,
// Or, And, Cmp, Sum, Product.
const (
	precAssign = iota + 1
	precOr
	precAnd
	precCmp
	precSum
	precProduct
)

// binOpInfo describes one binary operator's precedence and the
// ast.BinaryOp it lowers to. There is no compound-assignment token
// (`+=` and friends are not in the grammar's operator table): ast.
// ExprAssignOp exists in the node set for completeness but nothing in
// this parser currently constructs one.
type binOpInfo struct {
	prec int
	op   ast.BinaryOp
}

func binOpFor(k token.Kind) (binOpInfo, bool) {
	switch k {
	case token.KwOr:
		return binOpInfo{prec: precOr, op: ast.BinOr}, true
	case token.KwAnd:
		return binOpInfo{prec: precAnd, op: ast.BinAnd}, true
	case token.EqEq:
		return binOpInfo{prec: precCmp, op: ast.BinEq}, true
	case token.BangEq:
		return binOpInfo{prec: precCmp, op: ast.BinNotEq}, true
	case token.Lt:
		return binOpInfo{prec: precCmp, op: ast.BinLt}, true
	case token.LtEq:
		return binOpInfo{prec: precCmp, op: ast.BinLtEq}, true
	case token.Gt:
		return binOpInfo{prec: precCmp, op: ast.BinGt}, true
	case token.GtEq:
		return binOpInfo{prec: precCmp, op: ast.BinGtEq}, true
	case token.Plus:
		return binOpInfo{prec: precSum, op: ast.BinAdd}, true
	case token.Minus:
		return binOpInfo{prec: precSum, op: ast.BinSub}, true
	case token.Star:
		return binOpInfo{prec: precProduct, op: ast.BinMul}, true
	case token.Slash:
		return binOpInfo{prec: precProduct, op: ast.BinDiv}, true
	case token.Percent:
		return binOpInfo{prec: precProduct, op: ast.BinMod}, true
	default:
		return binOpInfo{}, false
	}
}

// parseExpr implements the Pratt loop: parse a primary, then repeatedly
// fold in binary operators and assignment at or above minPrec.
func (p *Parser) parseExpr(minPrec int) (*ast.Expr, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return nil, false
	}

	for {
		if p.at(token.Eq) && precAssign >= minPrec {
			p.bump()
			rhs, ok := p.parseExpr(precAssign) // right-associative: inclusive
			if !ok {
				return nil, false
			}
			lhs = p.b.NewAssignExpr(lhs.Span.Cover(rhs.Span), lhs, rhs)
			continue
		}

		info, isBin := binOpFor(p.tok.Kind)
		if !isBin || info.prec < minPrec {
			break
		}
		p.bump()
		// Left-associative: the recursive call requires strictly greater
		// precedence, so a same-precedence operator to the right does not
		// get folded into this call.
		rhs, ok := p.parseExpr(info.prec + 1)
		if !ok {
			return nil, false
		}
		lhs = p.b.NewBinaryExpr(lhs.Span.Cover(rhs.Span), info.op, lhs, rhs)
	}
	return lhs, true
}

// parseUnary parses `-expr`, `!expr`, or falls through to a postfix/call
// expression.
func (p *Parser) parseUnary() (*ast.Expr, bool) {
	switch p.tok.Kind {
	case token.Minus:
		tok := p.bump()
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return p.b.NewUnaryExpr(tok.Span.Cover(operand.Span), ast.UnNeg, operand), true
	case token.Bang:
		tok := p.bump()
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return p.b.NewUnaryExpr(tok.Span.Cover(operand.Span), ast.UnNot, operand), true
	default:
		return p.parseCall()
	}
}

// parseCall parses a primary followed by zero or more call suffixes:
// `primary(args...)(args...)...`.
func (p *Parser) parseCall() (*ast.Expr, bool) {
	e, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for p.at(token.LParen) {
		p.bump()
		var args []*ast.Expr
		if !p.at(token.RParen) {
			for {
				arg, ok := p.parseExpr(precAssign)
				if !ok {
					return nil, false
				}
				args = append(args, arg)
				if p.at(token.Comma) {
					p.bump()
					if p.at(token.RParen) {
						break
					}
					continue
				}
				break
			}
		}
		close, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close call arguments")
		if !ok {
			return nil, false
		}
		e = p.b.NewCallExpr(e.Span.Cover(close.Span), e, args)
	}
	return e, true
}

// parsePrimary parses a literal, identifier path, parenthesized
// expression, if-expression, block expression, or return-in-expression-
// position.
func (p *Parser) parsePrimary() (*ast.Expr, bool) {
	switch p.tok.Kind {
	case token.IntLit:
		tok := p.bump()
		return p.b.NewLitExpr(tok.Span, ast.LitInt, tok.Symbol), true
	case token.FloatLit:
		tok := p.bump()
		return p.b.NewLitExpr(tok.Span, ast.LitFloat, tok.Symbol), true
	case token.BoolLit:
		tok := p.bump()
		return p.b.NewLitExpr(tok.Span, ast.LitBool, tok.Symbol), true
	case token.StringLit:
		tok := p.bump()
		return p.b.NewLitExpr(tok.Span, ast.LitString, tok.Symbol), true
	case token.KwNull:
		tok := p.bump()
		return p.b.NewLitExpr(tok.Span, ast.LitNull, 0), true
	case token.Ident:
		path, ok := p.parsePath()
		if !ok {
			return nil, false
		}
		return p.b.NewPathExpr(path.Span, path), true
	case token.LParen:
		open := p.bump()
		inner, ok := p.parseExpr(precAssign)
		if !ok {
			return nil, false
		}
		close, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parenthesized expression")
		if !ok {
			return nil, false
		}
		return p.b.NewParenExpr(open.Span.Cover(close.Span), inner), true
	case token.KwIf:
		return p.parseIfExpr()
	case token.LBrace:
		return p.parseBlockExpr()
	case token.KwReturn:
		tok := p.bump()
		var value *ast.Expr
		if !p.atAny(token.Semicolon, token.RParen, token.RBrace, token.Comma, token.EOF) {
			var ok bool
			value, ok = p.parseExpr(precAssign)
			if !ok {
				return nil, false
			}
		}
		span := tok.Span
		if value != nil {
			span = span.Cover(value.Span)
		}
		return p.b.NewReturnExpr(span, value), true
	default:
		p.err(diag.SynExpectExpression, "expected an expression")
		return nil, false
	}
}

func (p *Parser) parseIfExpr() (*ast.Expr, bool) {
	kw := p.bump() // 'if'
	cond, ok := p.parseExpr(precAssign)
	if !ok {
		return nil, false
	}
	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected '{' to begin the 'if' branch")
		return nil, false
	}
	then, ok := p.parseBlockExpr()
	if !ok {
		return nil, false
	}
	span := kw.Span.Cover(then.Span)

	var elseBranch *ast.Expr
	if p.at(token.KwElse) {
		p.bump()
		if p.at(token.KwIf) {
			elseBranch, ok = p.parseIfExpr()
		} else if p.at(token.LBrace) {
			elseBranch, ok = p.parseBlockExpr()
		} else {
			p.err(diag.SynUnexpectedToken, "expected '{' or 'if' after 'else'")
			ok = false
		}
		if !ok {
			return nil, false
		}
		span = span.Cover(elseBranch.Span)
	}

	return p.b.NewIfExpr(span, cond, then, elseBranch), true
}
