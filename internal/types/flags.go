package types

// TypeFlags is a bitset carried alongside every interned Ty, letting a
// visitor skip whole subtrees it has no reason to rewalk — a type with
// no HasTyInfer bit set is never revisited by inference.
type TypeFlags uint32

const (
	HasTyInfer TypeFlags = 1 << iota
	HasError
)

// computeFlags derives kind's flags. Tuple inherits the union of its
// elements' flags, looked up through in since a Tuple's elements are
// referenced by Ty id rather than embedded inline.
func computeFlags(in *Interner, kind TyKind) TypeFlags {
	switch kind.Tag {
	case KindInfer:
		return HasTyInfer
	case KindError:
		return HasError
	case KindTuple:
		var flags TypeFlags
		for _, elem := range kind.Tuple {
			flags |= in.flags[elem]
		}
		return flags
	default:
		return 0
	}
}
