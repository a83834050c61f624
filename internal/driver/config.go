package driver

// FileLoader reads source text given a path, abstracting the filesystem so
// tests can supply in-memory inputs without touching disk.
type FileLoader interface {
	Load(path string) (string, error)
}

// InputSpec names the source to compile: either a path FileLoader resolves,
// or an in-memory body paired with a virtual file name.
type InputSpec struct {
	// Path is non-empty for a FileInput; Name/Body are set for a StrInput.
	Path string
	Name string
	Body string
}

// FileInput builds an InputSpec that reads path through the configured
// FileLoader.
func FileInput(path string) InputSpec {
	return InputSpec{Path: path}
}

// StrInput builds an InputSpec for an in-memory source string, addressed
// under name in diagnostics.
func StrInput(name, body string) InputSpec {
	return InputSpec{Name: name, Body: body}
}

// IsFile reports whether this InputSpec names a path to load, as opposed
// to an already-in-memory body.
func (in InputSpec) IsFile() bool {
	return in.Path != ""
}

// Config gathers everything Compile needs beyond the diagnostic emitter:
// what to compile and where generated artifacts would go (OutputDir/
// OutputFile are carried for parity with a real driver's CLI surface;
// this front-end does not itself generate code, so nothing writes there
// yet).
type Config struct {
	Input      InputSpec
	OutputDir  string
	OutputFile string
	// MaxDiagnostics caps the diagnostic bag; zero falls back to a
	// sensible default in Compile.
	MaxDiagnostics int
}

const defaultMaxDiagnostics = 100
