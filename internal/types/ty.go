package types

// Ty identifies an interned type, indexing into an Interner. Every
// distinct TyKind a given Interner has seen gets exactly one Ty, so
// equality is plain == and a Ty is cheap to copy, store, and use as a
// map key — the same TypeID-as-handle discipline the pack's own type
// interner uses, generalized from a nominal/structural type system down
// to this grammar's much smaller TyKind.
type Ty uint32

// NoTy is the zero value, reserved as the invalid/not-yet-computed
// sentinel — index 0 of every Interner is never a real type.
const NoTy Ty = 0
