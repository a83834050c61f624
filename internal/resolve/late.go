package resolve

import (
	"stelaro/internal/ast"
	"stelaro/internal/diag"
)

// LateResolutionVisitor is Phase B: walk the AST carrying the module
// currently being resolved and a per-namespace stack of lexical scopes,
// resolving every path and binding every pattern it encounters.
type LateResolutionVisitor struct {
	dcx     diag.DiagCtxtHandle
	modules Modules
	root    *ModuleData

	parentModule *ModuleData
	valueScopes  ScopeStack
	typeScopes   ScopeStack

	// PathRes records, for the final segment of every resolved path, what
	// it resolved to. Lowering reads this to populate sir.Path.Res.
	PathRes map[ast.NodeId]Res
}

// NewLateResolutionVisitor creates a visitor rooted at root, with modules
// as built by ModuleGraphBuilder.
func NewLateResolutionVisitor(dcx diag.DiagCtxtHandle, modules Modules, root *ModuleData) *LateResolutionVisitor {
	return &LateResolutionVisitor{
		dcx:          dcx,
		modules:      modules,
		root:         root,
		parentModule: root,
		PathRes:      make(map[ast.NodeId]Res),
	}
}

// Resolve walks every item of stelo.
func (v *LateResolutionVisitor) Resolve(stelo *ast.Stelo) {
	moduleScope := NewModuleScope(v.root)
	v.valueScopes.Push(moduleScope)
	v.typeScopes.Push(moduleScope)
	v.visitItems(stelo.Items)
	v.typeScopes.Pop()
	v.valueScopes.Pop()
}

func (v *LateResolutionVisitor) visitItems(items []*ast.Item) {
	for _, item := range items {
		v.visitItem(item)
	}
}

func (v *LateResolutionVisitor) visitItem(item *ast.Item) {
	switch item.Kind {
	case ast.ItemFunction:
		v.visitFn(item)
	case ast.ItemMod:
		mod, ok := v.childModule(item)
		if !ok {
			return
		}
		outer := v.parentModule
		v.parentModule = mod

		scope := NewModuleScope(mod)
		v.valueScopes.Push(scope)
		v.typeScopes.Push(scope)
		v.visitItems(item.Items)
		v.typeScopes.Pop()
		v.valueScopes.Pop()

		v.parentModule = outer
	}
}

// childModule looks up the ModuleData for a `mod` item. This visitor
// only carries the module graph built by ModuleGraphBuilder, not the
// NodeId->LocalDefId map DefCollector built (lowering is the sole later
// consumer of that one) — so the child is found by walking
// parentModule's own TypeNS table for this item's name, which
// ModuleGraphBuilder already populated with the exact Res it recorded
// when defining the module.
func (v *LateResolutionVisitor) childModule(item *ast.Item) (*ModuleData, bool) {
	res, ok := v.parentModule.Lookup(TypeNS, item.Ident)
	if !ok || res.Kind != ResDef || res.DefKind != DefKindMod {
		return nil, false
	}
	local, ok := res.Def.AsLocal()
	if !ok {
		return nil, false
	}
	mod, ok := v.modules[local]
	return mod, ok
}

func (v *LateResolutionVisitor) visitFn(item *ast.Item) {
	paramScope := NewScope(ScopeItem)
	for _, p := range item.Sig.Params {
		v.resolveType(p.Ty)
		if p.Pat.Kind == ast.PatWildcard {
			continue
		}
		if paramScope.Bind(p.Pat.Ident, Res{Kind: ResLocal, Local: p.Pat.Id}) {
			v.dcx.EmitError(diag.SynDuplicateIdentInParamList, p.Span, "duplicate parameter name")
		}
	}
	if item.Sig.RetTy.Kind == ast.FnRetExplicit {
		v.resolveType(item.Sig.RetTy.Ty)
	}

	v.valueScopes.Push(paramScope)
	v.visitBlockBody(item.Body)
	v.valueScopes.Pop()
}

// visitBlockBody visits a block expression's contents without pushing an
// extra NoRestriction scope of its own — the function's ScopeItem
// parameter frame already serves as the body's outermost scope, matching
// spec §4.6's "function parameters push an Item(Fn) scope."
func (v *LateResolutionVisitor) visitBlockBody(block *ast.Expr) {
	for i := range block.Stmts {
		v.visitStmt(&block.Stmts[i])
	}
	if block.Tail != nil {
		v.visitExpr(block.Tail)
	}
}

func (v *LateResolutionVisitor) visitStmt(s *ast.Stmt) {
	switch s.Kind {
	case ast.StmtLet:
		if s.Local.Ty != nil {
			v.resolveType(s.Local.Ty)
		}
		if s.Local.Init != nil {
			v.visitExpr(s.Local.Init)
		}
		if s.Local.Pat.Kind != ast.PatWildcard {
			scope := v.valueScopes.Top()
			scope.Bind(s.Local.Pat.Ident, Res{Kind: ResLocal, Local: s.Local.Pat.Id})
		}
	case ast.StmtSemi:
		v.visitExpr(s.Expr)
	case ast.StmtWhile:
		v.visitExpr(s.Cond)
		v.visitBlockScoped(s.Body)
	case ast.StmtReturn:
		if s.Value != nil {
			v.visitExpr(s.Value)
		}
	case ast.StmtPrint:
		v.visitExpr(s.Print)
	}
}

// visitBlockScoped visits a nested ExprBlock under its own fresh
// NoRestriction scope (used anywhere a block appears other than directly
// as a function body).
func (v *LateResolutionVisitor) visitBlockScoped(block *ast.Expr) {
	v.valueScopes.Push(NewScope(NoRestriction))
	v.visitBlockBody(block)
	v.valueScopes.Pop()
}

func (v *LateResolutionVisitor) visitExpr(e *ast.Expr) {
	switch e.Kind {
	case ast.ExprCall:
		v.visitExpr(e.Callee)
		for _, a := range e.Args {
			v.visitExpr(a)
		}
	case ast.ExprIf:
		v.visitExpr(e.Cond)
		v.visitBlockScoped(e.Then)
		if e.Else != nil {
			if e.Else.Kind == ast.ExprIf {
				v.visitExpr(e.Else)
			} else {
				v.visitBlockScoped(e.Else)
			}
		}
	case ast.ExprBlock:
		v.visitBlockScoped(e)
	case ast.ExprBinary:
		v.visitExpr(e.Lhs)
		v.visitExpr(e.Rhs)
	case ast.ExprUnary:
		v.visitExpr(e.Operand)
	case ast.ExprLit:
		// No sub-expressions, nothing to resolve.
	case ast.ExprReturn:
		if e.Value != nil {
			v.visitExpr(e.Value)
		}
	case ast.ExprParen:
		v.visitExpr(e.Inner)
	case ast.ExprAssign:
		v.visitExpr(e.Target)
		v.visitExpr(e.RHS)
	case ast.ExprAssignOp:
		v.visitExpr(e.Target)
		v.visitExpr(e.RHS)
	case ast.ExprPath:
		v.resolvePathExpr(e.Path)
	}
}

func (v *LateResolutionVisitor) resolvePathExpr(path *ast.Path) {
	result := ResolvePathWithScopes(path, ValueNS, v.parentModule, &v.valueScopes, v.modules)
	v.recordPathResult(path, result)
}

func (v *LateResolutionVisitor) resolveType(ty *ast.Type) {
	if ty == nil || ty.Kind != ast.TypePath {
		return
	}
	result := ResolvePathWithScopes(ty.Path, TypeNS, v.parentModule, &v.typeScopes, v.modules)
	if result.Kind == PathFailed {
		v.reportUnresolved(ty.Path, result)
		return
	}
	if result.Kind == PathNonModule {
		v.PathRes[ty.Path.Last().Id] = result.Res
		return
	}
	v.reportUnresolved(ty.Path, PathResult{Kind: PathFailed, Span: ty.Path.Span, Label: "a type cannot name a module", SegmentName: ty.Path.Last().Ident})
}

func (v *LateResolutionVisitor) recordPathResult(path *ast.Path, result PathResult) {
	switch result.Kind {
	case PathNonModule:
		v.PathRes[path.Last().Id] = result.Res
	case PathModule:
		v.reportUnresolved(path, PathResult{Kind: PathFailed, Span: path.Span, Label: "expected a value, found a module", SegmentName: path.Last().Ident})
	case PathFailed:
		v.reportUnresolved(path, result)
	}
}

func (v *LateResolutionVisitor) reportUnresolved(path *ast.Path, result PathResult) {
	v.dcx.EmitError(diag.SynUnresolvedName, result.Span, result.Label)
	v.PathRes[path.Last().Id] = ErrRes
}
