package detector

// Family partitions the framework catalog by integration style. Templates
// are batteries-included toolchains that own their bundler; libraries are
// view layers wired up to whichever bundler the project chose.
type Family string

const (
	FamilyTemplate Family = "template"
	FamilyLibrary  Family = "library"
)

// FrameworkType uniquely identifies an entry in the framework catalog.
type FrameworkType string

const (
	FrameworkCreateReactApp FrameworkType = "create-react-app"
	FrameworkVueCLIVue2     FrameworkType = "vue-cli-vue2"
	FrameworkVueCLIVue3     FrameworkType = "vue-cli-vue3"
	FrameworkNextJS         FrameworkType = "nextjs"
	FrameworkNuxtJS         FrameworkType = "nuxtjs"
	FrameworkAngular        FrameworkType = "angular"
	FrameworkVue2           FrameworkType = "vue2"
	FrameworkVue3           FrameworkType = "vue3"
	FrameworkReact          FrameworkType = "react"
	FrameworkSvelte         FrameworkType = "svelte"
)

// BundlerType uniquely identifies an entry in the bundler catalog.
type BundlerType string

const (
	BundlerWebpack BundlerType = "webpack"
	BundlerVite    BundlerType = "vite"
)

// Rule ties a package name to the version range a project must declare for
// the rule to hold. The project's declared range is reduced to its floor and
// checked against Requires.
type Rule struct {
	Package  string `json:"package"`
	Requires string `json:"requires"`
}

// Framework describes one detectable framework. All Detectors must hold for
// the framework to match. Bundlers lists the bundlers the framework can run
// under, in preference order.
type Framework struct {
	Type      FrameworkType `json:"type"`
	Name      string        `json:"name"`
	Family    Family        `json:"family"`
	Detectors []Rule        `json:"detectors"`
	Bundlers  []BundlerType `json:"bundlers"`
}

// SupportsBundler reports whether b is among the framework's bundlers.
func (f Framework) SupportsBundler(b BundlerType) bool {
	for _, supported := range f.Bundlers {
		if supported == b {
			return true
		}
	}
	return false
}

// Bundler describes one detectable bundler.
type Bundler struct {
	Type      BundlerType `json:"type"`
	Name      string      `json:"name"`
	Detectors []Rule      `json:"detectors"`
}

// DetectionResult is the outcome of dependency-based detection. Framework is
// nil when nothing matched. Bundler is empty for template frameworks, which
// bring their own toolchain, and for library matches where no known bundler
// is declared.
type DetectionResult struct {
	Framework *Framework  `json:"framework,omitempty"`
	Bundler   BundlerType `json:"bundler,omitempty"`
}

// Languages a scanned project can be written in.
const (
	LanguageJS = "js"
	LanguageTS = "ts"
)

// Package manager identifiers reported by a scan.
const (
	PackageManagerNPM       = "npm"
	PackageManagerYarn      = "yarn"
	PackageManagerYarnBerry = "yarn-berry"
	PackageManagerPNPM      = "pnpm"
	PackageManagerBun       = "bun"
)

// Report is the full outcome of scanning a project directory: the detection
// result plus the surrounding facts a caller needs to act on it.
type Report struct {
	Framework      *Framework        `json:"framework,omitempty"`
	Bundler        BundlerType       `json:"bundler,omitempty"`
	Language       string            `json:"language"`
	PackageManager string            `json:"package_manager"`
	NPMRegistry    string            `json:"npm_registry,omitempty"`
	Pinned         bool              `json:"pinned,omitempty"`
	Signals        []string          `json:"signals"`
	Meta           map[string]string `json:"meta,omitempty"`
}

// Options controls a project scan. The zero value scans quietly.
type Options struct {
	// Logger receives debug lines describing each detection step. Nil
	// disables them.
	Logger func(format string, args ...any)
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger(format, args...)
	}
}
