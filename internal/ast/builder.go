package ast

import (
	"stelaro/internal/collections"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// Builder assembles an AST while parsing. It owns the single monotonic
// NodeId counter shared by every node kind and the arenas each kind of
// node is bump-allocated into. Nodes are handed back and threaded through
// the tree as plain pointers: Arena[T] stores *T internally, so a pointee's
// address stays stable across further allocations.
type Builder struct {
	nextID NodeId

	stelos   *collections.Arena[Stelo]
	items    *collections.Arena[Item]
	fnParams *collections.Arena[FnParam]
	stmts    *collections.Arena[Stmt]
	locals   *collections.Arena[Local]
	exprs    *collections.Arena[Expr]
	types    *collections.Arena[Type]
	patterns *collections.Arena[Pattern]
}

// NewBuilder creates an empty Builder with default arena capacities.
func NewBuilder() *Builder {
	const defaultCap = 1 << 8
	return &Builder{
		stelos:   collections.NewArena[Stelo](1),
		items:    collections.NewArena[Item](defaultCap),
		fnParams: collections.NewArena[FnParam](defaultCap),
		stmts:    collections.NewArena[Stmt](defaultCap),
		locals:   collections.NewArena[Local](defaultCap),
		exprs:    collections.NewArena[Expr](defaultCap),
		types:    collections.NewArena[Type](defaultCap),
		patterns: collections.NewArena[Pattern](defaultCap),
	}
}

// nextNodeId allocates the next id in the shared, global sequence.
func (b *Builder) nextNodeId() NodeId {
	id := b.nextID
	b.nextID++
	return id
}

// NewStelo allocates the root node of a parsed file.
func (b *Builder) NewStelo(span source.Span, items []*Item) *Stelo {
	idx := b.stelos.Alloc(Stelo{Id: b.nextNodeId(), Span: span, Items: items})
	return b.stelos.Get(idx)
}

// NewFunctionItem allocates a `fn` item.
func (b *Builder) NewFunctionItem(span source.Span, ident symbol.Symbol, sig *FnSig, body *Expr) *Item {
	idx := b.items.Alloc(Item{
		Id:    b.nextNodeId(),
		Span:  span,
		Ident: ident,
		Kind:  ItemFunction,
		Sig:   sig,
		Body:  body,
	})
	return b.items.Get(idx)
}

// NewModItem allocates an inline `mod name { ... }` item.
func (b *Builder) NewModItem(span source.Span, ident symbol.Symbol, items []*Item) *Item {
	idx := b.items.Alloc(Item{
		Id:    b.nextNodeId(),
		Span:  span,
		Ident: ident,
		Kind:  ItemMod,
		Items: items,
	})
	return b.items.Get(idx)
}

// NewFnParam allocates a function parameter.
func (b *Builder) NewFnParam(span source.Span, pat *Pattern, ty *Type) *FnParam {
	idx := b.fnParams.Alloc(FnParam{Id: b.nextNodeId(), Span: span, Pat: pat, Ty: ty})
	return b.fnParams.Get(idx)
}

// NewLocal allocates the binding of a `let` statement.
func (b *Builder) NewLocal(span source.Span, pat *Pattern, ty *Type, init *Expr) *Local {
	idx := b.locals.Alloc(Local{Id: b.nextNodeId(), Span: span, Pat: pat, Ty: ty, Init: init})
	return b.locals.Get(idx)
}

func (b *Builder) newStmt(span source.Span, kind StmtKind, build func(*Stmt)) *Stmt {
	s := Stmt{Id: b.nextNodeId(), Span: span, Kind: kind}
	if build != nil {
		build(&s)
	}
	idx := b.stmts.Alloc(s)
	return b.stmts.Get(idx)
}

// NewLetStmt allocates a `let` statement.
func (b *Builder) NewLetStmt(span source.Span, local *Local) *Stmt {
	return b.newStmt(span, StmtLet, func(s *Stmt) { s.Local = local })
}

// NewSemiStmt allocates an expression statement terminated by `;`.
func (b *Builder) NewSemiStmt(span source.Span, e *Expr) *Stmt {
	return b.newStmt(span, StmtSemi, func(s *Stmt) { s.Expr = e })
}

// NewWhileStmt allocates a `while` statement.
func (b *Builder) NewWhileStmt(span source.Span, cond, body *Expr) *Stmt {
	return b.newStmt(span, StmtWhile, func(s *Stmt) { s.Cond = cond; s.Body = body })
}

// NewReturnStmt allocates a `return` statement. value is nil for a bare
// `return;`.
func (b *Builder) NewReturnStmt(span source.Span, value *Expr) *Stmt {
	return b.newStmt(span, StmtReturn, func(s *Stmt) { s.Value = value })
}

// NewPrintStmt allocates a `print` statement.
func (b *Builder) NewPrintStmt(span source.Span, value *Expr) *Stmt {
	return b.newStmt(span, StmtPrint, func(s *Stmt) { s.Print = value })
}

func (b *Builder) newExpr(span source.Span, kind ExprKind, build func(*Expr)) *Expr {
	e := Expr{Id: b.nextNodeId(), Span: span, Kind: kind}
	if build != nil {
		build(&e)
	}
	idx := b.exprs.Alloc(e)
	return b.exprs.Get(idx)
}

// NewCallExpr allocates a call expression `Callee(Args...)`.
func (b *Builder) NewCallExpr(span source.Span, callee *Expr, args []*Expr) *Expr {
	return b.newExpr(span, ExprCall, func(e *Expr) { e.Callee = callee; e.Args = args })
}

// NewIfExpr allocates an `if` expression. elseBranch is nil when there is
// no `else` clause.
func (b *Builder) NewIfExpr(span source.Span, cond, then, elseBranch *Expr) *Expr {
	return b.newExpr(span, ExprIf, func(e *Expr) { e.Cond = cond; e.Then = then; e.Else = elseBranch })
}

// NewBlockExpr allocates a block expression. tail is nil when the block
// ends in a statement rather than a trailing expression.
func (b *Builder) NewBlockExpr(span source.Span, stmts []Stmt, tail *Expr) *Expr {
	return b.newExpr(span, ExprBlock, func(e *Expr) { e.Stmts = stmts; e.Tail = tail })
}

// NewBinaryExpr allocates a binary expression.
func (b *Builder) NewBinaryExpr(span source.Span, op BinaryOp, lhs, rhs *Expr) *Expr {
	return b.newExpr(span, ExprBinary, func(e *Expr) { e.Op = op; e.Lhs = lhs; e.Rhs = rhs })
}

// NewUnaryExpr allocates a unary expression.
func (b *Builder) NewUnaryExpr(span source.Span, op UnaryOp, operand *Expr) *Expr {
	return b.newExpr(span, ExprUnary, func(e *Expr) { e.UnOp = op; e.Operand = operand })
}

// NewLitExpr allocates a literal expression. lit is the literal's interned
// source spelling (e.g. "42", "3.5", `"hi"`, "true"); it is empty for
// LitNull, whose value is carried entirely by kind.
func (b *Builder) NewLitExpr(span source.Span, kind LitKind, lit symbol.Symbol) *Expr {
	return b.newExpr(span, ExprLit, func(e *Expr) { e.LitKind = kind; e.Lit = lit })
}

// NewReturnExpr allocates a `return` used in expression position. value is
// nil for a bare `return`.
func (b *Builder) NewReturnExpr(span source.Span, value *Expr) *Expr {
	return b.newExpr(span, ExprReturn, func(e *Expr) { e.Value = value })
}

// NewParenExpr allocates a parenthesized expression.
func (b *Builder) NewParenExpr(span source.Span, inner *Expr) *Expr {
	return b.newExpr(span, ExprParen, func(e *Expr) { e.Inner = inner })
}

// NewAssignExpr allocates a plain assignment `Target = RHS`.
func (b *Builder) NewAssignExpr(span source.Span, target, rhs *Expr) *Expr {
	return b.newExpr(span, ExprAssign, func(e *Expr) { e.Target = target; e.RHS = rhs })
}

// NewAssignOpExpr allocates a compound assignment `Target Op= RHS`.
func (b *Builder) NewAssignOpExpr(span source.Span, op BinaryOp, target, rhs *Expr) *Expr {
	return b.newExpr(span, ExprAssignOp, func(e *Expr) { e.Op = op; e.Target = target; e.RHS = rhs })
}

// NewPathExpr allocates a name reference expression.
func (b *Builder) NewPathExpr(span source.Span, path *Path) *Expr {
	return b.newExpr(span, ExprPath, func(e *Expr) { e.Path = path })
}

// NewType allocates a type annotation node.
func (b *Builder) NewType(span source.Span, kind TypeKind, path *Path) *Type {
	idx := b.types.Alloc(Type{Id: b.nextNodeId(), Span: span, Kind: kind, Path: path})
	return b.types.Get(idx)
}

// NewPattern allocates a pattern node.
func (b *Builder) NewPattern(span source.Span, kind PatternKind, ident symbol.Symbol) *Pattern {
	idx := b.patterns.Alloc(Pattern{Id: b.nextNodeId(), Span: span, Kind: kind, Ident: ident})
	return b.patterns.Get(idx)
}

// NewPathSegment allocates one segment of a Path, assigning it its own
// NodeId so resolution can record a Res against the exact segment.
func (b *Builder) NewPathSegment(span source.Span, ident symbol.Symbol) PathSegment {
	return PathSegment{Id: b.nextNodeId(), Span: span, Ident: ident}
}
