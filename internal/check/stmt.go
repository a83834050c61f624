package check

import (
	"stelaro/internal/infer"
	"stelaro/internal/sir"
)

func checkStmt(fcx *fnCtx, id sir.ItemLocalId) {
	n := fcx.node(id)
	switch n.Kind {
	case sir.NodeStmtLet:
		declaredTy := fcx.annotatedTy(n.Span, n.Ty)
		if n.Init != sir.MaxItemLocalId {
			checkExpr(fcx, n.Init, infer.ExpectType(declaredTy))
		}
		fcx.localTypes[id] = declaredTy
		fcx.results.record(id, declaredTy)

	case sir.NodeStmtSemi:
		checkExpr(fcx, n.Value, infer.NoExpect())
		fcx.results.record(id, fcx.in.Unit)

	case sir.NodeStmtWhile:
		checkExpr(fcx, n.Cond, infer.ExpectType(fcx.in.Bool))
		// A while body may run zero times, so its divergence never makes
		// the code after the loop unreachable.
		before := fcx.diverges
		fcx.diverges = false
		checkExpr(fcx, n.Body, infer.NoExpect())
		fcx.diverges = before
		fcx.results.record(id, fcx.in.Unit)

	case sir.NodeStmtReturn:
		fcx.checkReturn(n.Span, n.Value)
		fcx.results.record(id, fcx.in.Never)

	default:
		// `print e;` has no dedicated statement kind: it lowers straight
		// to an IntrinsicPrint NodeExprCall sitting directly in the
		// block's Stmts, not wrapped in a NodeStmtSemi. Any other
		// expression-shaped statement node is checked the same way,
		// discarding its type.
		checkExpr(fcx, id, infer.NoExpect())
	}
}
