package types

import "stelaro/internal/defs"

// Interner deduplicates Ty values by TyKind: the same kind always yields
// the same Ty id. There is no mutex — a single compilation session
// interns from one goroutine only (unlike the session-global string
// interner, which guards its table with a sync.RWMutex).
type Interner struct {
	kinds []TyKind
	flags []TypeFlags
	index map[typeKey]Ty

	// Pre-interned common types, built once per Interner.
	Bool, Char, Str, Unit, Never Ty
	Ints                         [4]Ty // indexed by IntTy
	Uints                        [4]Ty // indexed by UintTy
	Floats                       [2]Ty // indexed by FloatTy
}

// NewInterner creates an Interner with every ground type pre-interned.
// Index 0 is reserved for NoTy, matching the invalid-sentinel-at-zero
// convention every other arena-backed table in this module follows.
func NewInterner() *Interner {
	in := &Interner{index: make(map[typeKey]Ty, 32)}
	in.push(TyKind{}) // reserve NoTy at index 0

	in.Bool = in.intern(TyKind{Tag: KindBool})
	in.Char = in.intern(TyKind{Tag: KindChar})
	in.Str = in.intern(TyKind{Tag: KindStr})
	in.Unit = in.intern(TyKind{Tag: KindUnit})
	in.Never = in.intern(TyKind{Tag: KindNever})
	for _, it := range []IntTy{I8, I16, I32, I64} {
		in.Ints[it] = in.intern(TyKind{Tag: KindInt, Int: it})
	}
	for _, ut := range []UintTy{U8, U16, U32, U64} {
		in.Uints[ut] = in.intern(TyKind{Tag: KindUint, Uint: ut})
	}
	for _, ft := range []FloatTy{F32, F64} {
		in.Floats[ft] = in.intern(TyKind{Tag: KindFloat, Float: ft})
	}
	return in
}

// Int32 is the ground type integer literals default to when no other
// constraint pins them down.
func (in *Interner) Int32() Ty { return in.Ints[I32] }

// Float64 is the ground type float literals default to when no other
// constraint pins them down.
func (in *Interner) Float64() Ty { return in.Floats[F64] }

// Kind returns id's descriptor.
func (in *Interner) Kind(id Ty) TyKind { return in.kinds[id] }

// IsError reports whether id is, or contains, an already-diagnosed error
// type — downstream passes treat these as already-reported.
func (in *Interner) IsError(id Ty) bool { return in.flags[id]&HasError != 0 }

// HasInferVars reports whether id still contains an unresolved type
// variable anywhere in its structure.
func (in *Interner) HasInferVars(id Ty) bool { return in.flags[id]&HasTyInfer != 0 }

// Intern returns the unique Ty for kind, creating one if this Interner
// has never seen this exact kind before. KindTuple is never deduplicated
// (see typeKey's doc comment); every other kind is.
func (in *Interner) Intern(kind TyKind) Ty {
	if kind.Tag == KindTuple {
		return in.push(kind)
	}
	key := keyFor(kind)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.intern(kind)
}

func (in *Interner) intern(kind TyKind) Ty {
	id := in.push(kind)
	in.index[keyFor(kind)] = id
	return id
}

func (in *Interner) push(kind TyKind) Ty {
	id := Ty(len(in.kinds))
	in.kinds = append(in.kinds, kind)
	in.flags = append(in.flags, computeFlags(in, kind))
	return id
}

// typeKey is the comparable-struct dedup key backing Interner.index. It
// omits KindTuple's element list: a Go map key must be comparable, and a
// []Ty can't be one. Since this grammar's surface syntax never produces
// a tuple type, Intern never bothers structurally deduplicating them —
// every tuple kind is pushed fresh, which only matters for reference
// equality of types nothing in this compiler currently constructs.
type typeKey struct {
	Tag       Tag
	Int       IntTy
	Uint      UintTy
	Float     FloatTy
	FnDef     defs.DefId
	InferKind InferKind
	InferVid  uint32
}

func keyFor(kind TyKind) typeKey {
	key := typeKey{Tag: kind.Tag, Int: kind.Int, Uint: kind.Uint, Float: kind.Float, FnDef: kind.FnDef}
	switch kind.Infer.Kind {
	case InferTyVar:
		key.InferKind, key.InferVid = InferTyVar, uint32(kind.Infer.TyVar)
	case InferIntVar:
		key.InferKind, key.InferVid = InferIntVar, uint32(kind.Infer.IntVar)
	case InferFloatVar:
		key.InferKind, key.InferVid = InferFloatVar, uint32(kind.Infer.FloatVar)
	}
	return key
}
