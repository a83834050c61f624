package check

import (
	"fmt"

	"stelaro/internal/defs"
	"stelaro/internal/diag"
	"stelaro/internal/infer"
	"stelaro/internal/resolve"
	"stelaro/internal/sir"
	"stelaro/internal/source"
	"stelaro/internal/types"
)

// fnCtx is the state threaded through checking a single function body —
// the same per-pass context shape resolve's parentModule swap and lower's
// ownerFrame save/restore use, scoped here to one InferCtxt per function.
type fnCtx struct {
	dcx    diag.DiagCtxtHandle
	in     *types.Interner
	icx    *infer.InferCtxt
	crate  *sir.Crate
	result resolve.Result
	sigs   map[defs.LocalDefId]fnSig

	owner   defs.LocalDefId
	region  *sir.OwnerNodes
	results *TypeckResults

	retTy          types.Ty
	diverges       bool
	warnedDeadCode bool

	// localTypes maps a let/param's own ItemLocalId to the type recorded
	// for its pattern — what a ResLocal path resolves to.
	localTypes map[sir.ItemLocalId]types.Ty
}

func (fcx *fnCtx) node(id sir.ItemLocalId) *sir.Node {
	return &fcx.region.Nodes.Get(id).Node
}

// mismatch reports a type mismatch between expected and actual at span.
func (fcx *fnCtx) mismatch(span source.Span, expected, actual types.Ty) {
	fcx.results.TaintedByErrors = true
	fcx.dcx.EmitError(diag.TypeMismatch, span,
		fmt.Sprintf("expected %s, found %s", describeTy(fcx.in, expected), describeTy(fcx.in, actual)))
}

// finish fully resolves every recorded node type, defaulting leftover
// int/float vars and reporting TypeCannotInferVar for a leftover general
// TyVar — the only variable kind spec leaves with no default.
func (fcx *fnCtx) finish() {
	for id, ty := range fcx.results.NodeTypes {
		resolved, ok := fcx.icx.FullyResolve(ty)
		if !ok {
			fcx.results.TaintedByErrors = true
			fcx.dcx.EmitError(diag.TypeCannotInferVar, fcx.node(id).Span,
				"cannot infer the type of this expression; add an explicit type annotation")
			resolved = errTy(fcx.in)
		}
		fcx.results.NodeTypes[id] = resolved
	}
}
