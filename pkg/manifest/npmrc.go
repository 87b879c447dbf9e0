package manifest

import (
	"io/fs"
	"strings"

	"gopkg.in/ini.v1"
)

// NPMRCFileName is the per-project npm configuration file.
const NPMRCFileName = ".npmrc"

// NPMRC holds the subset of .npmrc settings surfaced in scan reports.
type NPMRC struct {
	Registry     string
	EngineStrict bool
}

// LoadNPMRC reads the project .npmrc, if any. A missing or unparseable file
// yields the zero value; registry configuration never blocks a scan.
func LoadNPMRC(fsys fs.FS) NPMRC {
	data, err := fs.ReadFile(fsys, NPMRCFileName)
	if err != nil {
		return NPMRC{}
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return NPMRC{}
	}

	section := cfg.Section("")
	return NPMRC{
		Registry:     strings.TrimSpace(section.Key("registry").String()),
		EngineStrict: section.Key("engine-strict").MustBool(false),
	}
}
