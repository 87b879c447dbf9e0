package detector

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// PinFileName is the project-level override file. When present, its choice
// bypasses dependency-based detection entirely.
const PinFileName = "framescout.toml"

// Pin records an explicit framework choice for a project.
type Pin struct {
	Framework string `toml:"framework"`
	Bundler   string `toml:"bundler,omitempty"`
}

// LoadPin reads the pin file from the project root. A missing file is not an
// error; the scan simply falls back to detection. A present but invalid pin
// is an error, so a typo never silently degrades into auto-detection.
func LoadPin(fsys fs.FS) (*Pin, error) {
	data, err := fs.ReadFile(fsys, PinFileName)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", PinFileName, err)
	}

	var p Pin
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", PinFileName, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", PinFileName, err)
	}
	return &p, nil
}

// Validate checks the pin against the catalogs.
func (p *Pin) Validate() error {
	fw, ok := FrameworkByType(FrameworkType(p.Framework))
	if !ok {
		return fmt.Errorf("unknown framework type %q", p.Framework)
	}
	if p.Bundler != "" {
		if _, ok := BundlerByType(BundlerType(p.Bundler)); !ok {
			return fmt.Errorf("unknown bundler type %q", p.Bundler)
		}
		if !fw.SupportsBundler(BundlerType(p.Bundler)) {
			return fmt.Errorf("framework %q does not support bundler %q", p.Framework, p.Bundler)
		}
	}
	return nil
}

// Resolve maps the pin onto catalog entries. The pin must already be valid.
func (p *Pin) Resolve() DetectionResult {
	return DetectionResult{
		Framework: frameworkRef(FrameworkType(p.Framework)),
		Bundler:   BundlerType(p.Bundler),
	}
}

func (p *Pin) signal() string {
	if p.Bundler != "" {
		return fmt.Sprintf("%s pins framework %s with bundler %s", PinFileName, p.Framework, p.Bundler)
	}
	return fmt.Sprintf("%s pins framework %s", PinFileName, p.Framework)
}

// SavePin writes the pin file into the project root, replacing any existing
// one.
func SavePin(root string, p *Pin) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("failed to encode %s: %w", PinFileName, err)
	}

	path := filepath.Join(root, PinFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", PinFileName, err)
	}
	return nil
}

func frameworkRef(t FrameworkType) *Framework {
	for i := range Frameworks {
		if Frameworks[i].Type == t {
			return &Frameworks[i]
		}
	}
	return nil
}
