package resolve

import "stelaro/internal/symbol"

// ScopeKind restricts what a Scope may bind, mirroring the lexical
// contexts the late-resolution walk pushes and pops.
type ScopeKind uint8

const (
	// NoRestriction is an ordinary block scope: `let` bindings accumulate
	// as statements are visited.
	NoRestriction ScopeKind = iota
	// ScopeItem is a function-parameter scope, bound all at once before
	// the body is walked.
	ScopeItem
	// ScopeModule is a module's own namespace, pushed in both namespaces
	// when entering `mod name { ... }` or the stelo root.
	ScopeModule
)

// Scope is one frame of the lexical scope stack: an insertion-ordered set
// of bindings (Go has no built-in ordered map; a slice alongside the map
// gives the same "first definition wins position" iteration order the
// original's IndexMap provides) plus what kind of frame it is.
type Scope struct {
	Kind     ScopeKind
	Module   *ModuleData // set when Kind == ScopeModule
	bindings map[symbol.Symbol]Res
	order    []symbol.Symbol
}

// NewScope creates an empty scope of the given kind.
func NewScope(kind ScopeKind) *Scope {
	return &Scope{Kind: kind, bindings: make(map[symbol.Symbol]Res)}
}

// NewModuleScope creates a scope backed directly by a module's namespace
// table, for the `Module(m)` scope kind.
func NewModuleScope(m *ModuleData) *Scope {
	return &Scope{Kind: ScopeModule, Module: m}
}

// Bind records name -> res in this scope, shadowing (not erroring on) any
// binding already present. Returns true if name was already bound in
// this exact scope frame (duplicate parameter name, code 301 territory);
// the binding is still installed, overwriting the previous one, since
// Bind never refuses to record a name.
func (s *Scope) Bind(name symbol.Symbol, res Res) (wasAlreadyBound bool) {
	if s.bindings == nil {
		s.bindings = make(map[symbol.Symbol]Res)
	}
	_, wasAlreadyBound = s.bindings[name]
	if !wasAlreadyBound {
		s.order = append(s.order, name)
	}
	s.bindings[name] = res
	return wasAlreadyBound
}

// Lookup searches this single scope frame for name, consulting the
// backing module's namespace table when this is a ScopeModule frame.
func (s *Scope) Lookup(ns Namespace, name symbol.Symbol) (Res, bool) {
	if s.Kind == ScopeModule {
		return s.Module.Lookup(ns, name)
	}
	res, ok := s.bindings[name]
	return res, ok
}

// ScopeStack is a per-namespace stack of lexical scopes, pushed and
// popped as the late-resolution walk enters and leaves blocks, function
// bodies, and modules.
type ScopeStack struct {
	frames []*Scope
}

// Push adds a new innermost frame.
func (s *ScopeStack) Push(scope *Scope) { s.frames = append(s.frames, scope) }

// Pop removes the innermost frame.
func (s *ScopeStack) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Lookup searches the stack innermost-first.
func (s *ScopeStack) Lookup(ns Namespace, name symbol.Symbol) (Res, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if res, ok := s.frames[i].Lookup(ns, name); ok {
			return res, true
		}
	}
	return Res{}, false
}

// Top returns the innermost frame, or nil if the stack is empty.
func (s *ScopeStack) Top() *Scope {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}
