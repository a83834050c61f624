package symbol

import "sync/atomic"

// session holds the process-wide interner for the currently-running
// compilation: one compilation session is active at a time, and
// Symbol.String() below reaches through it.
var session atomic.Pointer[Interner]

// InstallSession installs in as the active session's interner. Must be
// called before any package-level Intern/String helper is used, and torn
// down with TeardownSession when the compilation completes, so looked-up
// strings are never retained past the session's lifetime.
func InstallSession(in *Interner) {
	session.Store(in)
}

// TeardownSession clears the active session, so a dangling Interner can be
// garbage collected; after it, Intern panics and Symbol.String returns a
// "<no-session>" placeholder instead of reading stale data.
func TeardownSession() {
	session.Store(nil)
}

// CurrentSession returns the active session's Interner, or nil if none is
// installed.
func CurrentSession() *Interner {
	return session.Load()
}

// Intern interns s in the active session. Panics if no session is installed.
func Intern(s string) Symbol {
	in := session.Load()
	if in == nil {
		panic("symbol: Intern called without an installed session")
	}
	return in.Intern(s)
}

// String looks up id in the active session.
func (id Symbol) String() string {
	in := session.Load()
	if in == nil {
		return "<no-session>"
	}
	s, ok := in.Lookup(id)
	if !ok {
		return "<invalid-symbol>"
	}
	return s
}
