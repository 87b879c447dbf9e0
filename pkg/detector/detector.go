package detector

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"framescout/pkg/manifest"
)

// Detect matches a manifest's declared dependencies against the framework
// and bundler catalogs. It is a pure function of the manifest: no file I/O,
// no external calls.
//
// Template frameworks are tried first. A template matches when every
// detector rule holds and it supports exactly one bundler; the bundler slot
// stays empty because the template drives its own toolchain. A template
// whose rules hold but which supports several bundlers is skipped rather
// than guessed at. Library frameworks are tried next: the first one whose
// rules hold wins, then every supported bundler is tried in catalog order.
func Detect(m manifest.Manifest) DetectionResult {
	return detect(m, Frameworks, Bundlers, Options{})
}

func detect(m manifest.Manifest, frameworks []Framework, bundlers []Bundler, opts Options) DetectionResult {
	for i := range frameworks {
		fw := &frameworks[i]
		if fw.Family != FamilyTemplate {
			continue
		}
		if !rulesSatisfied(m, fw.Detectors, fw.Name, opts) {
			continue
		}
		if len(fw.Bundlers) != 1 {
			opts.logf("%s matched but supports %d bundlers, skipping", fw.Name, len(fw.Bundlers))
			continue
		}
		opts.logf("matched template %s", fw.Name)
		return DetectionResult{Framework: fw}
	}

	for i := range frameworks {
		fw := &frameworks[i]
		if fw.Family != FamilyLibrary {
			continue
		}
		if !rulesSatisfied(m, fw.Detectors, fw.Name, opts) {
			continue
		}
		for j := range bundlers {
			b := &bundlers[j]
			if !fw.SupportsBundler(b.Type) {
				continue
			}
			if rulesSatisfied(m, b.Detectors, b.Name, opts) {
				opts.logf("matched library %s with bundler %s", fw.Name, b.Name)
				return DetectionResult{Framework: fw, Bundler: b.Type}
			}
		}
		opts.logf("matched library %s, no known bundler declared", fw.Name)
		return DetectionResult{Framework: fw}
	}

	opts.logf("no framework matched")
	return DetectionResult{}
}

// rulesSatisfied reports whether every rule holds against the manifest.
// Rules are checked in order and the first failure short-circuits.
func rulesSatisfied(m manifest.Manifest, rules []Rule, subject string, opts Options) bool {
	for _, r := range rules {
		declared, ok := m.Declared(r.Package)
		if !ok {
			opts.logf("%s: %s not declared", subject, r.Package)
			return false
		}
		if !RangeSatisfies(declared, r.Requires) {
			opts.logf("%s: %s %q does not satisfy %q", subject, r.Package, declared, r.Requires)
			return false
		}
	}
	return true
}

// Scan inspects the project rooted at root and builds a full Report.
func Scan(root string, opts Options) (Report, error) {
	return ScanFS(os.DirFS(root), opts)
}

// ScanFS is Scan against an abstract filesystem, which keeps tests hermetic.
// The filesystem's root must be the project directory itself.
func ScanFS(fsys fs.FS, opts Options) (Report, error) {
	report := Report{
		Language:       LanguageJS,
		PackageManager: PackageManagerNPM,
		Meta:           map[string]string{},
	}

	m, err := manifest.Load(fsys)
	switch {
	case err == nil:
		report.Signals = append(report.Signals,
			fmt.Sprintf("%s: %d dependencies, %d devDependencies",
				manifest.FileName, len(m.Dependencies), len(m.DevDependencies)))
	case errors.Is(err, fs.ErrNotExist):
		report.Signals = append(report.Signals, "no "+manifest.FileName+" found")
	default:
		return Report{}, err
	}

	if m.Name != "" {
		report.Meta["package_name"] = m.Name
	}
	if m.Version != "" {
		report.Meta["package_version"] = m.Version
	}

	report.Language = detectLanguage(fsys, m)
	if report.Language == LanguageTS {
		report.Signals = append(report.Signals, languageSignal(m))
	}

	pm, pmMarker := DetectPackageManager(fsys, m)
	report.PackageManager = pm
	switch {
	case pmMarker != "":
		report.Signals = append(report.Signals, pmMarker+" selects package manager "+pm)
	case pm != PackageManagerNPM:
		report.Signals = append(report.Signals, "package manager "+pm)
	}

	npmrc := manifest.LoadNPMRC(fsys)
	report.NPMRegistry = npmrc.Registry
	if npmrc.EngineStrict {
		report.Meta["engine_strict"] = "true"
	}

	pin, err := LoadPin(fsys)
	if err != nil {
		return Report{}, err
	}
	if pin != nil {
		result := pin.Resolve()
		report.Framework = result.Framework
		report.Bundler = result.Bundler
		report.Pinned = true
		report.Signals = append(report.Signals, pin.signal())
		return report, nil
	}

	result := detect(m, Frameworks, Bundlers, opts)
	report.Framework = result.Framework
	report.Bundler = result.Bundler
	report.Signals = append(report.Signals, matchSignals(m, result)...)

	return report, nil
}

// matchSignals spells out which declarations produced the detection result.
func matchSignals(m manifest.Manifest, result DetectionResult) []string {
	if result.Framework == nil {
		return nil
	}

	var signals []string
	for _, r := range result.Framework.Detectors {
		if declared, ok := m.Declared(r.Package); ok {
			signals = append(signals,
				fmt.Sprintf("%s has %s %s (satisfies %s)", manifest.FileName, r.Package, declared, r.Requires))
		}
	}
	if result.Bundler != "" {
		if b, ok := BundlerByType(result.Bundler); ok {
			for _, r := range b.Detectors {
				if declared, ok := m.Declared(r.Package); ok {
					signals = append(signals,
						fmt.Sprintf("%s has %s %s (satisfies %s)", manifest.FileName, r.Package, declared, r.Requires))
				}
			}
		}
	}
	return signals
}
