package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"stelaro/internal/project"
)

// Manifest is a decoded stelaro.toml: package identity plus the entry
// stelo to compile when no explicit input is given on the command line.
type Manifest struct {
	Path    string
	Root    string
	Package PackageConfig
	Run     RunConfig
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type RunConfig struct {
	Main string `toml:"main"`
}

// DiscoverManifest walks up from startDir looking for stelaro.toml,
// returning ok=false (no error) if none is found.
func DiscoverManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := project.FindStelaroToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var decoded struct {
		Package PackageConfig `toml:"package"`
		Run     RunConfig     `toml:"run"`
	}
	meta, err := toml.DecodeFile(manifestPath, &decoded)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(decoded.Package.Name) == "" {
		return nil, true, fmt.Errorf("%s: missing [package].name", manifestPath)
	}
	return &Manifest{
		Path:    manifestPath,
		Root:    filepath.Dir(manifestPath),
		Package: decoded.Package,
		Run:     decoded.Run,
	}, true, nil
}

// InputSpec resolves the manifest's [run].main entry into a compile input,
// relative to the manifest's directory.
func (m *Manifest) InputSpec() (InputSpec, error) {
	main := strings.TrimSpace(m.Run.Main)
	if main == "" {
		return InputSpec{}, fmt.Errorf("%s: missing [run].main", m.Path)
	}
	return FileInput(filepath.Join(m.Root, filepath.FromSlash(main))), nil
}
