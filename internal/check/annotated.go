package check

import (
	"stelaro/internal/ast"
	"stelaro/internal/diag"
	"stelaro/internal/resolve"
	"stelaro/internal/sir"
	"stelaro/internal/source"
	"stelaro/internal/types"
)

// primTy maps a resolved primitive-type name to its ground Ty.
func primTy(in *types.Interner, p resolve.PrimTy) types.Ty {
	switch p {
	case resolve.PrimBool:
		return in.Bool
	case resolve.PrimChar:
		return in.Char
	case resolve.PrimStr:
		return in.Str
	case resolve.PrimI8:
		return in.Ints[types.I8]
	case resolve.PrimI16:
		return in.Ints[types.I16]
	case resolve.PrimI32:
		return in.Ints[types.I32]
	case resolve.PrimI64:
		return in.Ints[types.I64]
	case resolve.PrimU8:
		return in.Uints[types.U8]
	case resolve.PrimU16:
		return in.Uints[types.U16]
	case resolve.PrimU32:
		return in.Uints[types.U32]
	case resolve.PrimU64:
		return in.Uints[types.U64]
	case resolve.PrimF32:
		return in.Floats[types.F32]
	case resolve.PrimF64:
		return in.Floats[types.F64]
	case resolve.PrimUnit:
		return in.Unit
	}
	return errTy(in)
}

// errTy is the shared, deduplicated "already diagnosed" type: typeKey
// excludes KindError's Guard field, so every call interns the same Ty.
func errTy(in *types.Interner) types.Ty {
	return in.Intern(types.TyKind{Tag: types.KindError, Guard: diag.ErrorGuarantee{}})
}

func resolvePathType(in *types.Interner, dcx diag.DiagCtxtHandle, span source.Span, p *sir.Path) types.Ty {
	if p == nil {
		return errTy(in)
	}
	switch p.Res.Kind {
	case resolve.ResPrimTy:
		return primTy(in, p.Res.Prim)
	default:
		// Nothing in this grammar's TypeNS resolves to a usable type
		// besides a primitive name yet; a module name or unresolved path
		// used in type position is already an error the resolver caught
		// (ResErr) or a shape the grammar can't otherwise produce.
		dcx.EmitError(diag.SynUnresolvedName, span, "expected a type name")
		return errTy(in)
	}
}

// signatureType resolves a function's declared parameter or return type.
// `_` has no meaning in signature position — there is no enclosing
// expression to infer it from — so it is rejected rather than handed a
// fresh TyVar.
func signatureType(in *types.Interner, dcx diag.DiagCtxtHandle, span source.Span, ty *sir.Type) types.Ty {
	if ty == nil {
		return in.Unit
	}
	switch ty.Kind {
	case ast.TypeUnit:
		return in.Unit
	case ast.TypeInfer:
		dcx.EmitError(diag.TypeCannotInferVar, span, "function signatures must name a concrete type, not `_`")
		return errTy(in)
	default: // ast.TypePath
		return resolvePathType(in, dcx, span, ty.Path)
	}
}

// annotatedTy resolves a type annotation written inside a function body
// (a `let`'s `: Ty`), where `_` is meaningful: it asks inference to fill
// the slot in from context, so it becomes a fresh TyVar instead of an
// error.
func (fcx *fnCtx) annotatedTy(span source.Span, ty *sir.Type) types.Ty {
	if ty == nil {
		return fcx.icx.NewTyVar()
	}
	switch ty.Kind {
	case ast.TypeUnit:
		return fcx.in.Unit
	case ast.TypeInfer:
		return fcx.icx.NewTyVar()
	default: // ast.TypePath
		return resolvePathType(fcx.in, fcx.dcx, span, ty.Path)
	}
}
