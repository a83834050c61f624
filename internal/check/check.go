package check

import (
	"stelaro/internal/defs"
	"stelaro/internal/diag"
	"stelaro/internal/infer"
	"stelaro/internal/resolve"
	"stelaro/internal/sir"
	"stelaro/internal/types"
)

// fnSig is a function's checked signature: parameter types in
// declaration order, plus the declared return type (unit if none).
type fnSig struct {
	Params []types.Ty
	Ret    types.Ty
}

// Check type-checks every function in crate, returning one TypeckResults
// per function definition. Signatures are collected for every function
// before any body is checked, so a call to a function defined later in
// the same stelo still finds a complete signature.
func Check(dcx diag.DiagCtxtHandle, in *types.Interner, crate *sir.Crate, result resolve.Result) map[defs.LocalDefId]*TypeckResults {
	fns := functionDefs(crate, result)
	sigs := collectSignatures(dcx, in, crate, fns)

	out := make(map[defs.LocalDefId]*TypeckResults, len(fns))
	for _, def := range fns {
		out[def] = checkFunction(dcx, in, crate, result, sigs, def)
	}
	return out
}

// functionDefs lists every LocalDefId whose owner region carries a body
// at local id Zero — the signal lowering leaves only on a `fn` owner,
// never on a `mod` owner.
func functionDefs(crate *sir.Crate, result resolve.Result) []defs.LocalDefId {
	var out []defs.LocalDefId
	for i := 0; i < result.Table.Len(); i++ {
		def := defs.LocalDefId(i)
		if _, ok := crate.AccessOwner(def).Bodies.Get(sir.Zero); ok {
			out = append(out, def)
		}
	}
	return out
}

func collectSignatures(dcx diag.DiagCtxtHandle, in *types.Interner, crate *sir.Crate, fns []defs.LocalDefId) map[defs.LocalDefId]fnSig {
	sigs := make(map[defs.LocalDefId]fnSig, len(fns))
	for _, def := range fns {
		region := crate.AccessOwner(def)
		owner := region.Nodes.Get(sir.Zero).Node

		params := make([]types.Ty, len(owner.Params))
		for i, paramID := range owner.Params {
			paramNode := region.Nodes.Get(paramID).Node
			params[i] = signatureType(in, dcx, paramNode.Span, paramNode.Ty)
		}
		ret := signatureType(in, dcx, owner.Span, owner.Ty)
		sigs[def] = fnSig{Params: params, Ret: ret}
	}
	return sigs
}

func checkFunction(dcx diag.DiagCtxtHandle, in *types.Interner, crate *sir.Crate, result resolve.Result, sigs map[defs.LocalDefId]fnSig, def defs.LocalDefId) *TypeckResults {
	region := crate.AccessOwner(def)
	body, _ := region.Bodies.Get(sir.Zero)
	sig := sigs[def]

	fcx := &fnCtx{
		dcx:        dcx,
		in:         in,
		icx:        infer.New(in),
		crate:      crate,
		result:     result,
		sigs:       sigs,
		owner:      def,
		region:     region,
		results:    newTypeckResults(),
		retTy:      sig.Ret,
		localTypes: make(map[sir.ItemLocalId]types.Ty),
	}

	for i, paramID := range body.Params {
		fcx.localTypes[paramID] = sig.Params[i]
		fcx.results.record(paramID, sig.Params[i])
	}

	bodyNode := fcx.node(body.Value)
	hasTail := bodyNode.Tail != sir.MaxItemLocalId
	bodyTy := checkExpr(fcx, body.Value, infer.NoExpect())

	// A tail-less body whose statements always diverge never produces its
	// block value, so only a body that can fall off the end is unified.
	if !(fcx.diverges && !hasTail) && !fcx.icx.Unify(bodyTy, fcx.retTy) {
		fcx.results.TaintedByErrors = true
		if !hasTail && !fcx.diverges {
			fcx.dcx.EmitError(diag.TypeMissingReturn, bodyNode.Span,
				"function does not return a value on all control-flow paths")
		} else {
			fcx.mismatch(bodyNode.Span, fcx.retTy, bodyTy)
		}
	}

	fcx.finish()
	return fcx.results
}
