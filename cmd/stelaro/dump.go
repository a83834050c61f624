package main

import (
	"fmt"
	"io"
	"strings"

	"stelaro/internal/ast"
)

// dumpStelo writes a compact, indented S-expression tree of the parsed
// file: one line per node, children indented two spaces deeper than their
// parent. It exists for `stelaro parse`'s human-readable output — there is
// no JSON/SARIF variant, since nothing downstream of this CLI consumes one.
func dumpStelo(w io.Writer, stelo *ast.Stelo) {
	for _, item := range stelo.Items {
		dumpItem(w, item, 0)
	}
}

func indent(w io.Writer, depth int, format string, args ...any) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func dumpItem(w io.Writer, item *ast.Item, depth int) {
	switch item.Kind {
	case ast.ItemFunction:
		indent(w, depth, "fn %s", item.Ident)
		for _, p := range item.Sig.Params {
			indent(w, depth+1, "param %s", patternName(p.Pat))
		}
		if item.Sig.RetTy.Kind == ast.FnRetExplicit {
			indent(w, depth+1, "returns")
		}
		dumpExpr(w, item.Body, depth+1)
	case ast.ItemMod:
		indent(w, depth, "mod %s", item.Ident)
		for _, child := range item.Items {
			dumpItem(w, child, depth+1)
		}
	}
}

func patternName(p *ast.Pattern) string {
	if p.Kind == ast.PatWildcard {
		return "_"
	}
	return p.Ident.String()
}

func dumpExpr(w io.Writer, e *ast.Expr, depth int) {
	if e == nil {
		return
	}
	switch e.Kind {
	case ast.ExprBlock:
		indent(w, depth, "block")
		for _, s := range e.Stmts {
			dumpStmt(w, &s, depth+1)
		}
		if e.Tail != nil {
			dumpExpr(w, e.Tail, depth+1)
		}
	case ast.ExprLit:
		indent(w, depth, "lit %s", e.Lit)
	case ast.ExprPath:
		indent(w, depth, "path %s", e.Path.Last().Ident)
	case ast.ExprCall:
		indent(w, depth, "call")
		dumpExpr(w, e.Callee, depth+1)
		for _, a := range e.Args {
			dumpExpr(w, a, depth+1)
		}
	case ast.ExprBinary:
		indent(w, depth, "binary")
		dumpExpr(w, e.Lhs, depth+1)
		dumpExpr(w, e.Rhs, depth+1)
	case ast.ExprUnary:
		indent(w, depth, "unary")
		dumpExpr(w, e.Operand, depth+1)
	case ast.ExprIf:
		indent(w, depth, "if")
		dumpExpr(w, e.Cond, depth+1)
		dumpExpr(w, e.Then, depth+1)
		dumpExpr(w, e.Else, depth+1)
	case ast.ExprReturn:
		indent(w, depth, "return")
		dumpExpr(w, e.Value, depth+1)
	case ast.ExprParen:
		dumpExpr(w, e.Inner, depth)
	case ast.ExprAssign, ast.ExprAssignOp:
		indent(w, depth, "assign")
		dumpExpr(w, e.Target, depth+1)
		dumpExpr(w, e.RHS, depth+1)
	}
}

func dumpStmt(w io.Writer, s *ast.Stmt, depth int) {
	switch s.Kind {
	case ast.StmtLet:
		indent(w, depth, "let %s", patternName(s.Local.Pat))
		dumpExpr(w, s.Local.Init, depth+1)
	case ast.StmtSemi:
		dumpExpr(w, s.Expr, depth)
	case ast.StmtWhile:
		indent(w, depth, "while")
		dumpExpr(w, s.Cond, depth+1)
		dumpExpr(w, s.Body, depth+1)
	case ast.StmtReturn:
		indent(w, depth, "return")
		dumpExpr(w, s.Value, depth+1)
	case ast.StmtPrint:
		indent(w, depth, "print")
		dumpExpr(w, s.Print, depth+1)
	}
}
