package resolve

import (
	"stelaro/internal/ast"
	"stelaro/internal/defs"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// PathResultKind discriminates the outcome of resolving a path.
type PathResultKind uint8

const (
	// PathModule: the path names a module.
	PathModule PathResultKind = iota
	// PathNonModule: the path names a non-module definition or local.
	PathNonModule
	// PathFailed: some segment did not resolve.
	PathFailed
)

// PathResult is the outcome of ResolvePathWithScopes.
type PathResult struct {
	Kind PathResultKind

	// PathModule.
	Module *ModuleData

	// PathNonModule.
	Res Res

	// PathFailed.
	Span             source.Span
	Label            string
	SegmentName      symbol.Symbol
	IsErrFromLastSeg bool
}

// Modules indexes every module (including the stelo root) by the
// LocalDefId of the definition it belongs to, as built by
// ModuleGraphBuilder. Resolving a multi-segment path needs it to step
// from one segment's module Res into that module's own namespace table.
type Modules map[defs.LocalDefId]*ModuleData

// ResolvePathWithScopes resolves a path against scopes (consulted only
// for the first segment) and the enclosing module's bindings, per spec
// §4.6: a single-segment path searches the scope stack innermost-first,
// falling back to parentModule; a multi-segment path resolves its first
// segment the same way, then walks subsequent segments purely through
// each resolved module's own namespace table.
func ResolvePathWithScopes(path *ast.Path, ns Namespace, parentModule *ModuleData, scopes *ScopeStack, modules Modules) PathResult {
	segs := path.Segments
	first := segs[0]

	var firstRes Res
	var found bool
	if scopes != nil {
		firstRes, found = scopes.Lookup(pickNS(ns, len(segs) > 1), first.Ident)
	}
	if !found {
		firstRes, found = parentModule.Lookup(pickNS(ns, len(segs) > 1), first.Ident)
	}
	if !found {
		return PathResult{
			Kind:        PathFailed,
			Span:        first.Span,
			Label:       "cannot find " + ns.String() + " in this scope",
			SegmentName: first.Ident,
		}
	}

	if len(segs) == 1 {
		if firstRes.IsErr() {
			return PathResult{Kind: PathFailed, Span: first.Span, Label: "name resolved to an error", SegmentName: first.Ident, IsErrFromLastSeg: true}
		}
		return PathResult{Kind: PathNonModule, Res: firstRes}
	}

	mod, ok := moduleOf(firstRes, modules)
	if !ok {
		return PathResult{Kind: PathFailed, Span: first.Span, Label: "expected a module, found something else", SegmentName: first.Ident}
	}

	rest := segs[1:]
	for i, seg := range rest {
		last := i == len(rest)-1
		res, ok := mod.Lookup(pickNS(ns, !last), seg.Ident)
		if !ok {
			return PathResult{Kind: PathFailed, Span: seg.Span, Label: "cannot find name in module", SegmentName: seg.Ident}
		}
		if last {
			if res.IsErr() {
				return PathResult{Kind: PathFailed, Span: seg.Span, Label: "name resolved to an error", SegmentName: seg.Ident, IsErrFromLastSeg: true}
			}
			return PathResult{Kind: PathNonModule, Res: res}
		}
		next, ok := moduleOf(res, modules)
		if !ok {
			return PathResult{Kind: PathFailed, Span: seg.Span, Label: "expected a module, found something else", SegmentName: seg.Ident}
		}
		mod = next
	}
	return PathResult{Kind: PathModule, Module: mod}
}

// pickNS is the namespace a segment is looked up in: every non-final
// segment of a multi-segment path is a module prefix, so it is always
// looked up in TypeNS regardless of the path's overall namespace.
func pickNS(ns Namespace, isPrefix bool) Namespace {
	if isPrefix {
		return TypeNS
	}
	return ns
}

func moduleOf(res Res, modules Modules) (*ModuleData, bool) {
	if res.Kind != ResDef || res.DefKind != DefKindMod {
		return nil, false
	}
	local, ok := res.Def.AsLocal()
	if !ok {
		return nil, false
	}
	mod, ok := modules[local]
	return mod, ok
}
