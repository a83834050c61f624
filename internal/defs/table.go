package defs

import (
	"stelaro/internal/collections"
	"stelaro/internal/diag"
	"stelaro/internal/fingerprint"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// StableSteloId is a Fingerprint derived from the stelo's name, so that a
// DefPathHash stays comparable across compilations of the same stelo (and
// distinguishable from a same-shaped definition in a different one).
type StableSteloId fingerprint.Fingerprint

// NewStableSteloId hashes the stelo name (its file stem, absent an
// explicit `stelo_name` manifest field) into a StableSteloId.
func NewStableSteloId(name string) StableSteloId {
	return StableSteloId(fingerprint.NewStableHasher().WriteString(name).Finish())
}

// DefPathHash is the 128-bit stable hash of a definition's full path:
// the stelo it belongs to, combined with a content hash of the path
// itself.
type DefPathHash fingerprint.Fingerprint

// disambigKey groups sibling definitions competing for the same
// disambiguator slot: same parent, same namespace kind, same name.
type disambigKey struct {
	parent DefIndex
	kind   DefPathDataKind
	name   symbol.Symbol
}

// DefPathTable allocates LocalDefIds in a tree and records each one's
// DefKey and DefPathHash. It is the sole authority for definition
// identity within one compilation: two definitions are the same iff they
// have the same DefIndex in the same table.
type DefPathTable struct {
	stelo  StableSteloId
	keys   *collections.IndexVec[DefIndex, DefKey]
	hashes *collections.IndexVec[DefIndex, DefPathHash]

	// byHash guards against DefPathHash collisions: two distinct
	// definitions must never land on the same hash.
	byHash map[DefPathHash]DefIndex

	// disambiguators counts how many definitions have already claimed a
	// given (parent, kind, name) triple, so the next one gets a fresh
	// disambiguator.
	disambiguators map[disambigKey]uint32
}

// NewDefPathTable creates a table pre-seeded with the stelo root
// definition at SteloRootIndex.
func NewDefPathTable(stelo StableSteloId) *DefPathTable {
	t := &DefPathTable{
		stelo:          stelo,
		keys:           collections.NewIndexVec[DefIndex, DefKey](),
		hashes:         collections.NewIndexVec[DefIndex, DefPathHash](),
		byHash:         make(map[DefPathHash]DefIndex),
		disambiguators: make(map[disambigKey]uint32),
	}
	rootKey := DefKey{Data: RootData()}
	rootHash := t.computeHash(rootKey, fingerprint.Fingerprint{})
	idx := t.keys.Push(rootKey)
	t.hashes.Push(rootHash)
	t.byHash[rootHash] = idx
	return t
}

// computeHash mixes the parent's hash with the DefPathData discriminant,
// the name text (never a Symbol's numeric index, so the hash does not
// depend on interner insertion order), and the disambiguator.
func (t *DefPathTable) computeHash(key DefKey, parentHash fingerprint.Fingerprint) DefPathHash {
	h := fingerprint.NewStableHasher()
	h.WriteUint64(uint64(key.Data.Kind))
	if key.Data.HasName {
		h.WriteString(symbol.CurrentSession().MustLookup(key.Data.Name))
	}
	h.WriteUint64(uint64(key.Disambiguator))
	content := h.Finish()

	stelo := fingerprint.Fingerprint(t.stelo)
	combined := stelo.Combine(parentHash.Combine(content))
	return DefPathHash(combined)
}

// CreateDef allocates a new definition under parent with the given path
// data, reporting a fatal bug through dcx if the resulting DefPathHash
// collides with an already-allocated definition — which can only happen
// from a genuine hash collision, since the disambiguator mechanism
// already guarantees (parent, kind, name, disambiguator) uniqueness.
func (t *DefPathTable) CreateDef(dcx diag.DiagCtxtHandle, at source.Span, parent DefIndex, data DefPathData) LocalDefId {
	dk := disambigKey{parent: parent, kind: data.Kind, name: data.Name}
	disambiguator := t.disambiguators[dk]
	t.disambiguators[dk] = disambiguator + 1

	key := DefKey{Parent: parent, HasParent: true, Data: data, Disambiguator: disambiguator}
	parentHash := fingerprint.Fingerprint(*t.hashes.Get(parent))
	hash := t.computeHash(key, parentHash)

	if existing, collided := t.byHash[hash]; collided {
		dcx.EmitFatal(diag.BugDefPathHashCollision, at,
			"DefPathHash collision while creating a new definition",
			diag.Note{Span: at, Msg: "colliding with an existing definition"})
		return LocalDefId(existing)
	}

	idx := t.keys.Push(key)
	t.hashes.Push(hash)
	t.byHash[hash] = idx
	return LocalDefId(idx)
}

// DefKey returns the stored key for id.
func (t *DefPathTable) DefKey(id LocalDefId) DefKey {
	return *t.keys.Get(DefIndex(id))
}

// DefPathHash returns the stored hash for id.
func (t *DefPathTable) DefPathHash(id LocalDefId) DefPathHash {
	return *t.hashes.Get(DefIndex(id))
}

// DefPath walks id's ancestors up to the stelo root, returning the
// root-first sequence of path segments.
func (t *DefPathTable) DefPath(id LocalDefId) DefPath {
	var segments DefPath
	cur := DefIndex(id)
	for {
		key := *t.keys.Get(cur)
		segments = append(segments, DisambiguatedDefPathData{Data: key.Data, Index: cur})
		if !key.HasParent {
			break
		}
		cur = key.Parent
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments
}

// Len returns the number of definitions allocated so far, including the
// stelo root.
func (t *DefPathTable) Len() int { return t.keys.Len() }
