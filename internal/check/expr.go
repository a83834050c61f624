package check

import (
	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/infer"
	"stelaro/internal/resolve"
	"stelaro/internal/sir"
	"stelaro/internal/source"
	"stelaro/internal/types"
)

// checkExpr checks id against expected, recording and returning its
// final type. Every expression-kind rule below computes its own natural
// type; the expectation is applied once, uniformly, here — so a kind's
// own rule only needs to special-case expected when it feeds a hint to
// a child (arithmetic's common operand type, a branch's downgraded
// expectation), not to re-implement the check-against-expected step.
func checkExpr(fcx *fnCtx, id sir.ItemLocalId, expected infer.Expectation) types.Ty {
	n := fcx.node(id)
	ty := checkExprKind(fcx, id, n, expected)
	if expected.Kind == infer.ExpectHasType {
		if !fcx.icx.Unify(ty, expected.Ty) {
			fcx.mismatch(n.Span, expected.Ty, ty)
			ty = errTy(fcx.in)
		} else {
			ty = fcx.icx.ShallowResolve(expected.Ty)
		}
	}
	return fcx.results.record(id, ty)
}

func checkExprKind(fcx *fnCtx, id sir.ItemLocalId, n *sir.Node, expected infer.Expectation) types.Ty {
	switch n.Kind {
	case sir.NodeExprLit:
		return checkLit(fcx, n)
	case sir.NodeExprPath:
		return checkPath(fcx, n)
	case sir.NodeExprUnary:
		return checkUnary(fcx, n)
	case sir.NodeExprBinary:
		return checkBinary(fcx, n, expected)
	case sir.NodeExprAssign:
		return checkAssign(fcx, n)
	case sir.NodeExprIf:
		return checkIf(fcx, n, expected)
	case sir.NodeExprBlock:
		return checkBlock(fcx, n, expected)
	case sir.NodeExprCall:
		return checkCall(fcx, n)
	case sir.NodeExprReturn:
		fcx.checkReturn(n.Span, n.Value)
		return fcx.in.Never
	case sir.NodeExprParen:
		return checkExpr(fcx, n.Inner, infer.NoExpect())
	}
	panic("check: unhandled expression kind")
}

// checkLit assigns every literal its natural type. An unconstrained
// integer or float literal gets a fresh var so the surrounding context
// (an arithmetic operand, a let's declared type, a return) can still pin
// its width down; spec's "Literal Char -> char" rule has no node to
// apply to, since this grammar never lexes a char literal, only the
// `char` type name. LitNull has no defined type yet.
func checkLit(fcx *fnCtx, n *sir.Node) types.Ty {
	switch n.LitKind {
	case ast.LitInt:
		return fcx.icx.NewIntVar()
	case ast.LitFloat:
		return fcx.icx.NewFloatVar()
	case ast.LitBool:
		return fcx.in.Bool
	case ast.LitString:
		return fcx.in.Str
	case ast.LitNull:
		fcx.dcx.EmitError(diag.TypeNullNotSupported, n.Span, "`null` is not yet supported")
		return errTy(fcx.in)
	}
	return errTy(fcx.in)
}

func checkPath(fcx *fnCtx, n *sir.Node) types.Ty {
	res := n.Path.Res
	switch res.Kind {
	case resolve.ResDef:
		if res.DefKind == resolve.DefKindFn {
			return fcx.in.Intern(types.TyKind{Tag: types.KindFnDef, FnDef: res.Def})
		}
		fcx.dcx.EmitError(diag.TypeMismatch, n.Span, "expected a value, found a module")
		return errTy(fcx.in)
	case resolve.ResLocal:
		sirID, ok := fcx.crate.Locals[res.Local]
		if !ok {
			return errTy(fcx.in)
		}
		ty, ok := fcx.localTypes[sirID.LocalId]
		if !ok {
			return errTy(fcx.in)
		}
		return ty
	case resolve.ResPrimTy:
		return primTy(fcx.in, res.Prim)
	default: // resolve.ResErr
		return errTy(fcx.in)
	}
}

// isNumeric reports whether k is a ground numeric type, or an
// int/float var still open enough that it might become one.
func isNumeric(fcx *fnCtx, ty types.Ty) bool {
	k := fcx.in.Kind(fcx.icx.ShallowResolve(ty))
	switch k.Tag {
	case types.KindInt, types.KindUint, types.KindFloat, types.KindError:
		return true
	case types.KindInfer:
		return k.Infer.Kind == types.InferIntVar || k.Infer.Kind == types.InferFloatVar
	}
	return false
}

func checkUnary(fcx *fnCtx, n *sir.Node) types.Ty {
	switch n.UnOp {
	case ast.UnNeg:
		operandTy := checkExpr(fcx, n.Operand, infer.NoExpect())
		if !isNumeric(fcx, operandTy) {
			fcx.dcx.EmitError(diag.TypeInvalidUnaryOp, n.Span, "unary `-` requires a numeric operand")
			return errTy(fcx.in)
		}
		return operandTy
	case ast.UnNot:
		checkExpr(fcx, n.Operand, infer.ExpectType(fcx.in.Bool))
		return fcx.in.Bool
	}
	return errTy(fcx.in)
}

func checkBinary(fcx *fnCtx, n *sir.Node, expected infer.Expectation) types.Ty {
	switch n.Op {
	case ast.BinAnd, ast.BinOr:
		checkExpr(fcx, n.Lhs, infer.ExpectType(fcx.in.Bool))
		checkExpr(fcx, n.Rhs, infer.ExpectType(fcx.in.Bool))
		return fcx.in.Bool

	case ast.BinEq, ast.BinNotEq, ast.BinLt, ast.BinLtEq, ast.BinGt, ast.BinGtEq:
		lhsTy := checkExpr(fcx, n.Lhs, infer.NoExpect())
		checkExpr(fcx, n.Rhs, infer.ExpectType(lhsTy))
		return fcx.in.Bool

	default: // arithmetic: BinAdd, BinSub, BinMul, BinDiv, BinMod
		target := fcx.icx.CoercionTargetType(expected)
		lhsTy := checkExpr(fcx, n.Lhs, infer.ExpectType(target))
		checkExpr(fcx, n.Rhs, infer.ExpectType(lhsTy))
		common := fcx.icx.ShallowResolve(lhsTy)
		if !isNumeric(fcx, common) {
			fcx.dcx.EmitError(diag.TypeInvalidBinaryOp, n.Span, "arithmetic requires numeric operands")
			return errTy(fcx.in)
		}
		return common
	}
}

func checkAssign(fcx *fnCtx, n *sir.Node) types.Ty {
	targetTy := checkExpr(fcx, n.Target, infer.NoExpect())
	checkExpr(fcx, n.RHS, infer.ExpectType(targetTy))
	return fcx.in.Unit
}

// checkIf checks both arms independently (each gets its own divergence
// scope, since only one of them actually runs), merging back into the
// enclosing function's diverges cell only when both arms diverge —
// falling through either arm makes the code after the if reachable.
func checkIf(fcx *fnCtx, n *sir.Node, expected infer.Expectation) types.Ty {
	checkExpr(fcx, n.Cond, infer.ExpectType(fcx.in.Bool))
	branchExpect := fcx.icx.AdjustForBranches(expected)

	before := fcx.diverges
	fcx.diverges = false
	thenTy := checkExpr(fcx, n.Then, branchExpect)
	thenDiverges := fcx.diverges

	if n.Else == sir.MaxItemLocalId {
		fcx.diverges = before
		if !fcx.icx.Unify(thenTy, fcx.in.Unit) {
			fcx.mismatch(n.Span, fcx.in.Unit, thenTy)
		}
		return fcx.in.Unit
	}

	fcx.diverges = false
	elseTy := checkExpr(fcx, n.Else, infer.ExpectType(thenTy))
	elseDiverges := fcx.diverges

	fcx.diverges = before || (thenDiverges && elseDiverges)
	return elseTy
}

func checkBlock(fcx *fnCtx, n *sir.Node, expected infer.Expectation) types.Ty {
	for _, stmtID := range n.Stmts {
		if fcx.diverges && !fcx.warnedDeadCode {
			fcx.dcx.EmitWarning(diag.TypeUnreachableCode, fcx.node(stmtID).Span, "unreachable statement")
			fcx.warnedDeadCode = true
		}
		checkStmt(fcx, stmtID)
	}
	if n.Tail == sir.MaxItemLocalId {
		return fcx.in.Unit
	}
	return checkExpr(fcx, n.Tail, expected)
}

func checkCall(fcx *fnCtx, n *sir.Node) types.Ty {
	if n.Intrinsic == sir.IntrinsicPrint {
		checkExpr(fcx, n.Args[0], infer.NoExpect())
		return fcx.in.Unit
	}

	calleeTy := checkExpr(fcx, n.Callee, infer.NoExpect())
	resolved := fcx.in.Kind(fcx.icx.ShallowResolve(calleeTy))
	if resolved.Tag == types.KindError {
		for _, argID := range n.Args {
			checkExpr(fcx, argID, infer.NoExpect())
		}
		return errTy(fcx.in)
	}
	if resolved.Tag != types.KindFnDef {
		fcx.dcx.EmitError(diag.TypeNotCallable, n.Span, "expression is not callable")
		for _, argID := range n.Args {
			checkExpr(fcx, argID, infer.NoExpect())
		}
		return errTy(fcx.in)
	}
	def, ok := resolved.FnDef.AsLocal()
	if !ok {
		return errTy(fcx.in)
	}
	sig, ok := fcx.sigs[def]
	if !ok {
		return errTy(fcx.in)
	}
	if len(n.Args) != len(sig.Params) {
		fcx.dcx.EmitError(diag.TypeWrongArgCount, n.Span, "wrong number of arguments")
		for _, argID := range n.Args {
			checkExpr(fcx, argID, infer.NoExpect())
		}
		return errTy(fcx.in)
	}
	for i, argID := range n.Args {
		checkExpr(fcx, argID, infer.ExpectType(sig.Params[i]))
	}
	return sig.Ret
}

// checkReturn unifies a return's (possibly absent) value against the
// enclosing function's declared return type and marks the function as
// diverged from this point on.
func (fcx *fnCtx) checkReturn(span source.Span, valueID sir.ItemLocalId) {
	if valueID == sir.MaxItemLocalId {
		if !fcx.icx.Unify(fcx.in.Unit, fcx.retTy) {
			fcx.mismatch(span, fcx.retTy, fcx.in.Unit)
		}
	} else {
		checkExpr(fcx, valueID, infer.ExpectType(fcx.retTy))
	}
	fcx.diverges = true
}
