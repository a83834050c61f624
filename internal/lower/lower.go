// Package lower transforms a resolved AST into SIR: one dense,
// owner-scoped node region per definition, with every path already
// carrying the Res the resolver computed for it.
package lower

import (
	"fmt"
	"strconv"

	"stelaro/internal/ast"
	"stelaro/internal/defs"
	"stelaro/internal/diag"
	"stelaro/internal/resolve"
	"stelaro/internal/sir"
	"stelaro/internal/symbol"
)

// Lower runs the entire AST->SIR pass over stelo, given the resolver's
// result. The returned Crate has one owner slot per definition in result,
// all OwnerPresent — a phantom slot left over would be an internal bug in
// this pass (every function and module is always its own owner).
func Lower(dcx diag.DiagCtxtHandle, result resolve.Result, stelo *ast.Stelo) *sir.Crate {
	ctx := &context{dcx: dcx, result: result, crate: sir.NewCrate()}
	for i := 0; i < result.Table.Len(); i++ {
		ctx.crate.Owners.Push(sir.MaybeOwner{Kind: sir.OwnerPhantom})
	}
	ctx.lowerRoot(stelo)
	return ctx.crate
}

// context carries the state of the owner currently being built. Entering
// a nested owner (a `mod` containing a `fn`) saves and restores this state
// via ownerFrame so the parent owner's region is untouched while the
// child is lowered.
type context struct {
	dcx    diag.DiagCtxtHandle
	result resolve.Result
	crate  *sir.Crate

	owner   defs.LocalDefId
	region  *sir.OwnerNodes
	parents []sir.ItemLocalId
}

func (c *context) currentParent() sir.ItemLocalId {
	if len(c.parents) == 0 {
		return sir.MaxItemLocalId
	}
	return c.parents[len(c.parents)-1]
}

func (c *context) push(node sir.Node) sir.ItemLocalId {
	return c.region.Nodes.Push(sir.ParentedNode{Node: node, Parent: c.currentParent()})
}

func (c *context) get(id sir.ItemLocalId) *sir.Node {
	return &c.region.Nodes.Get(id).Node
}

func (c *context) withParent(id sir.ItemLocalId, f func()) {
	c.parents = append(c.parents, id)
	f()
	c.parents = c.parents[:len(c.parents)-1]
}

type ownerFrame struct {
	owner   defs.LocalDefId
	region  *sir.OwnerNodes
	parents []sir.ItemLocalId
}

// enterOwner begins a fresh owner region for def, saving the caller's
// frame to restore once the owner is finished.
func (c *context) enterOwner(def defs.LocalDefId) ownerFrame {
	saved := ownerFrame{owner: c.owner, region: c.region, parents: c.parents}
	c.owner = def
	c.region = sir.NewOwnerNodes()
	c.parents = nil
	return saved
}

// exitOwner commits the owner region just built into the crate and
// restores the caller's frame.
func (c *context) exitOwner(def defs.LocalDefId, saved ownerFrame) {
	c.crate.Owners.Set(def, sir.MaybeOwner{Kind: sir.OwnerPresent, Nodes: c.region})
	c.owner, c.region, c.parents = saved.owner, saved.region, saved.parents
}

// lowerRoot gives the stelo root its own (childless) owner region, then
// lowers its items.
func (c *context) lowerRoot(stelo *ast.Stelo) {
	saved := c.enterOwner(defs.SteloRootDef)
	c.push(sir.Node{Kind: sir.NodeOwner})
	c.lowerItems(stelo.Items)
	c.exitOwner(defs.SteloRootDef, saved)
}

func (c *context) lowerItems(items []*ast.Item) {
	for _, item := range items {
		switch item.Kind {
		case ast.ItemFunction:
			c.lowerFunction(item)
		case ast.ItemMod:
			c.lowerMod(item)
		}
	}
}

func (c *context) lowerMod(item *ast.Item) {
	def := c.result.NodeToDef[item.Id]
	saved := c.enterOwner(def)
	c.push(sir.Node{Kind: sir.NodeOwner, Span: item.Span, Ident: item.Ident})
	c.lowerItems(item.Items)
	c.exitOwner(def, saved)
}

func (c *context) lowerFunction(item *ast.Item) {
	def := c.result.NodeToDef[item.Id]
	saved := c.enterOwner(def)

	ownerId := c.push(sir.Node{Kind: sir.NodeOwner, Span: item.Span, Ident: item.Ident})

	var params []sir.ItemLocalId
	var bodyValue sir.ItemLocalId
	c.withParent(ownerId, func() {
		params = make([]sir.ItemLocalId, 0, len(item.Sig.Params))
		for _, p := range item.Sig.Params {
			params = append(params, c.lowerParam(p))
		}
		if item.Sig.RetTy.Kind == ast.FnRetExplicit {
			c.get(ownerId).Ty = c.lowerType(item.Sig.RetTy.Ty, ownerId)
		}
		bodyValue = c.lowerBlockAsValue(item.Body)
	})
	c.get(ownerId).Params = params
	c.region.Bodies.Insert(sir.Zero, &sir.Body{Params: params, Value: bodyValue})

	c.exitOwner(def, saved)
}

func (c *context) lowerParam(p *ast.FnParam) sir.ItemLocalId {
	id := c.push(sir.Node{Kind: sir.NodeParam, Span: p.Span})
	c.withParent(id, func() {
		c.get(id).Ty = c.lowerType(p.Ty, id)
	})
	if p.Pat.Kind == ast.PatIdent {
		c.get(id).HasIdent = true
		c.get(id).Ident = p.Pat.Ident
		c.crate.Locals[p.Pat.Id] = sir.SirId{Owner: c.owner, LocalId: id}
	}
	return id
}

// lowerType lowers a type annotation, addressing it with the SirId of at
// — the node it annotates — rather than allocating it a slot of its own.
func (c *context) lowerType(ty *ast.Type, at sir.ItemLocalId) *sir.Type {
	if ty == nil {
		return nil
	}
	out := &sir.Type{Id: sir.SirId{Owner: c.owner, LocalId: at}, Kind: ty.Kind}
	if ty.Kind == ast.TypePath {
		out.Path = c.lowerPath(ty.Path, at)
	}
	return out
}

// lowerPath interns a resolved path, injecting the Res the resolver
// already computed for its final segment.
func (c *context) lowerPath(p *ast.Path, at sir.ItemLocalId) *sir.Path {
	segs := make([]sir.PathSegment, len(p.Segments))
	for i, s := range p.Segments {
		segs[i] = sir.PathSegment{Id: sir.SirId{Owner: c.owner, LocalId: at}, Ident: s.Ident}
	}
	res, ok := c.result.PathRes[p.Last().Id]
	if !ok {
		res = resolve.ErrRes
	}
	return &sir.Path{Segments: segs, Res: res}
}

func (c *context) lowerBlockAsValue(e *ast.Expr) sir.ItemLocalId {
	id := c.push(sir.Node{Kind: sir.NodeExprBlock, Span: e.Span})
	var stmts []sir.ItemLocalId
	tail := sir.MaxItemLocalId
	c.withParent(id, func() {
		for i := range e.Stmts {
			stmts = append(stmts, c.lowerStmt(&e.Stmts[i]))
		}
		if e.Tail != nil {
			tail = c.lowerExpr(e.Tail)
		}
	})
	n := c.get(id)
	n.Stmts, n.Tail = stmts, tail
	return id
}

func (c *context) lowerStmt(s *ast.Stmt) sir.ItemLocalId {
	switch s.Kind {
	case ast.StmtLet:
		id := c.push(sir.Node{Kind: sir.NodeStmtLet, Span: s.Span})
		init := sir.MaxItemLocalId
		c.withParent(id, func() {
			c.get(id).Ty = c.lowerType(s.Local.Ty, id)
			if s.Local.Init != nil {
				init = c.lowerExpr(s.Local.Init)
			}
		})
		n := c.get(id)
		n.Init = init
		if s.Local.Pat.Kind == ast.PatIdent {
			n.HasIdent = true
			n.Ident = s.Local.Pat.Ident
			c.crate.Locals[s.Local.Pat.Id] = sir.SirId{Owner: c.owner, LocalId: id}
		}
		return id

	case ast.StmtSemi:
		id := c.push(sir.Node{Kind: sir.NodeStmtSemi, Span: s.Span})
		c.withParent(id, func() { c.get(id).Value = c.lowerExpr(s.Expr) })
		return id

	case ast.StmtWhile:
		id := c.push(sir.Node{Kind: sir.NodeStmtWhile, Span: s.Span})
		c.withParent(id, func() {
			c.get(id).Cond = c.lowerExpr(s.Cond)
			c.get(id).Body = c.lowerBlockAsValue(s.Body)
		})
		return id

	case ast.StmtReturn:
		id := c.push(sir.Node{Kind: sir.NodeStmtReturn, Span: s.Span})
		c.get(id).Value = sir.MaxItemLocalId
		if s.Value != nil {
			c.withParent(id, func() { c.get(id).Value = c.lowerExpr(s.Value) })
		}
		return id

	case ast.StmtPrint:
		id := c.push(sir.Node{Kind: sir.NodeExprCall, Span: s.Span, Intrinsic: sir.IntrinsicPrint})
		c.get(id).Callee = sir.MaxItemLocalId
		c.withParent(id, func() {
			c.get(id).Args = []sir.ItemLocalId{c.lowerExpr(s.Print)}
		})
		return id
	}
	panic(fmt.Sprintf("lower: unhandled statement kind %v", s.Kind))
}

func (c *context) lowerExpr(e *ast.Expr) sir.ItemLocalId {
	switch e.Kind {
	case ast.ExprLit:
		return c.push(c.lowerLit(e))

	case ast.ExprPath:
		id := c.push(sir.Node{Kind: sir.NodeExprPath, Span: e.Span})
		c.withParent(id, func() { c.get(id).Path = c.lowerPath(e.Path, id) })
		return id

	case ast.ExprCall:
		id := c.push(sir.Node{Kind: sir.NodeExprCall, Span: e.Span})
		c.withParent(id, func() {
			c.get(id).Callee = c.lowerExpr(e.Callee)
			args := make([]sir.ItemLocalId, 0, len(e.Args))
			for _, a := range e.Args {
				args = append(args, c.lowerExpr(a))
			}
			c.get(id).Args = args
		})
		return id

	case ast.ExprIf:
		id := c.push(sir.Node{Kind: sir.NodeExprIf, Span: e.Span})
		c.get(id).Else = sir.MaxItemLocalId
		c.withParent(id, func() {
			c.get(id).Cond = c.lowerExpr(e.Cond)
			c.get(id).Then = c.lowerBlockAsValue(e.Then)
			if e.Else != nil {
				c.get(id).Else = c.lowerExpr(e.Else)
			}
		})
		return id

	case ast.ExprBlock:
		return c.lowerBlockAsValue(e)

	case ast.ExprBinary:
		id := c.push(sir.Node{Kind: sir.NodeExprBinary, Span: e.Span, Op: e.Op})
		c.withParent(id, func() {
			c.get(id).Lhs = c.lowerExpr(e.Lhs)
			c.get(id).Rhs = c.lowerExpr(e.Rhs)
		})
		return id

	case ast.ExprUnary:
		id := c.push(sir.Node{Kind: sir.NodeExprUnary, Span: e.Span, UnOp: e.UnOp})
		c.withParent(id, func() { c.get(id).Operand = c.lowerExpr(e.Operand) })
		return id

	case ast.ExprReturn:
		id := c.push(sir.Node{Kind: sir.NodeExprReturn, Span: e.Span})
		c.get(id).Value = sir.MaxItemLocalId
		if e.Value != nil {
			c.withParent(id, func() { c.get(id).Value = c.lowerExpr(e.Value) })
		}
		return id

	case ast.ExprParen:
		id := c.push(sir.Node{Kind: sir.NodeExprParen, Span: e.Span})
		c.withParent(id, func() { c.get(id).Inner = c.lowerExpr(e.Inner) })
		return id

	case ast.ExprAssign, ast.ExprAssignOp:
		id := c.push(sir.Node{Kind: sir.NodeExprAssign, Span: e.Span, Op: e.Op})
		c.withParent(id, func() {
			c.get(id).Target = c.lowerExpr(e.Target)
			c.get(id).RHS = c.lowerExpr(e.RHS)
		})
		return id
	}
	panic(fmt.Sprintf("lower: unhandled expression kind %v", e.Kind))
}

// lowerLit decodes a literal token's interned spelling into its semantic
// value. An integer literal that overflows a 64-bit value reports
// TypeIntLiteralOutOfRange but still lowers (as zero) so the rest of the
// owner keeps building.
func (c *context) lowerLit(e *ast.Expr) sir.Node {
	node := sir.Node{Kind: sir.NodeExprLit, Span: e.Span, LitKind: e.LitKind}
	text := symbol.CurrentSession().MustLookup(e.Lit)
	switch e.LitKind {
	case ast.LitInt:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			c.dcx.EmitError(diag.TypeIntLiteralOutOfRange, e.Span,
				fmt.Sprintf("integer literal %q does not fit in a 64-bit value", text))
			v = 0
		}
		node.LitInt = v
	case ast.LitFloat:
		v, _ := strconv.ParseFloat(text, 64)
		node.LitFloat = v
	case ast.LitBool:
		node.LitBool = text == "true"
	case ast.LitString, ast.LitNull:
		node.LitString = e.Lit
	}
	return node
}
