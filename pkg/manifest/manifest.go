package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

// FileName is the manifest file read from a project root.
const FileName = "package.json"

// Manifest holds a project's declared dependencies as read from package.json.
// It is an immutable input: the detector never modifies it, and a zero value
// behaves like a project with nothing declared.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	PackageManager  string            `json:"packageManager,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Declared returns the version range declared for a package.
// Regular dependencies take precedence over devDependencies.
func (m Manifest) Declared(name string) (string, bool) {
	if v, ok := m.Dependencies[name]; ok {
		return v, true
	}
	if v, ok := m.DevDependencies[name]; ok {
		return v, true
	}
	return "", false
}

// Declares reports whether a package appears in either dependency partition.
func (m Manifest) Declares(name string) bool {
	_, ok := m.Declared(name)
	return ok
}

// PackageManagerName returns the tool name from the packageManager field,
// e.g. "pnpm" for "pnpm@8.6.0". Empty when the field is unset.
func (m Manifest) PackageManagerName() string {
	name, _, _ := strings.Cut(strings.TrimSpace(m.PackageManager), "@")
	return name
}

// Parse decodes raw package.json content.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return m, nil
}

// Load reads and parses package.json from the root of fsys.
func Load(fsys fs.FS) (Manifest, error) {
	data, err := fs.ReadFile(fsys, FileName)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}
