package check

import "stelaro/internal/types"

// describeTy renders a Ty as the short name used in diagnostic messages.
func describeTy(in *types.Interner, ty types.Ty) string {
	k := in.Kind(ty)
	switch k.Tag {
	case types.KindBool:
		return "bool"
	case types.KindChar:
		return "char"
	case types.KindStr:
		return "str"
	case types.KindUnit:
		return "()"
	case types.KindNever:
		return "!"
	case types.KindError:
		return "<error>"
	case types.KindInt:
		switch k.Int {
		case types.I8:
			return "i8"
		case types.I16:
			return "i16"
		case types.I32:
			return "i32"
		case types.I64:
			return "i64"
		}
	case types.KindUint:
		switch k.Uint {
		case types.U8:
			return "u8"
		case types.U16:
			return "u16"
		case types.U32:
			return "u32"
		case types.U64:
			return "u64"
		}
	case types.KindFloat:
		switch k.Float {
		case types.F32:
			return "f32"
		case types.F64:
			return "f64"
		}
	case types.KindFnDef:
		return "fn"
	case types.KindTuple:
		return "tuple"
	case types.KindInfer:
		switch k.Infer.Kind {
		case types.InferIntVar:
			return "{integer}"
		case types.InferFloatVar:
			return "{float}"
		default:
			return "_"
		}
	}
	return "<unknown>"
}
