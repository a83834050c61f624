package diag

// Severity ranks a diagnostic's importance.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	// SevError is for non-fatal errors: the phase keeps going, but the
	// pipeline will not advance past the next phase boundary.
	SevError
	// SevFatal marks a diagnostic that is recorded in the Bag and whose
	// emission then unwinds the compilation.
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}
