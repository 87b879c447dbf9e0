package detector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestScanFS_TypeScriptViteProject(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": {
			Data: []byte(`{
				"name": "dashboard",
				"version": "0.3.1",
				"dependencies": {
					"react": "^18.2.0",
					"react-dom": "^18.2.0"
				},
				"devDependencies": {
					"typescript": "^4.9.0",
					"vite": "^4.0.0"
				}
			}`),
			Mode: 0o644,
		},
		"pnpm-lock.yaml": {Data: []byte(""), Mode: 0o644},
		".npmrc": {
			Data: []byte("registry=https://registry.npmjs.org/\nengine-strict=true\n"),
			Mode: 0o644,
		},
	}

	report, err := ScanFS(fsys, Options{})
	if err != nil {
		t.Fatalf("ScanFS returned error: %v", err)
	}

	if report.Framework == nil || report.Framework.Type != FrameworkReact {
		t.Fatalf("expected react framework, got %+v", report.Framework)
	}
	if report.Bundler != BundlerVite {
		t.Fatalf("expected vite bundler, got %q", report.Bundler)
	}
	if report.Language != LanguageTS {
		t.Fatalf("expected ts language, got %q", report.Language)
	}
	if report.PackageManager != PackageManagerPNPM {
		t.Fatalf("expected pnpm, got %q", report.PackageManager)
	}
	if report.NPMRegistry != "https://registry.npmjs.org/" {
		t.Fatalf("expected npm registry URL, got %q", report.NPMRegistry)
	}
	if report.Meta["engine_strict"] != "true" {
		t.Fatalf("expected engine_strict meta, got %v", report.Meta)
	}
	if report.Meta["package_name"] != "dashboard" {
		t.Fatalf("expected package_name meta, got %v", report.Meta)
	}
	if report.Pinned {
		t.Fatal("expected an unpinned report")
	}

	wantSignals := []string{
		"react ^18.2.0 (satisfies >=16.0.0)",
		"react-dom ^18.2.0 (satisfies >=16.0.0)",
		"vite ^4.0.0 (satisfies >=2.0.0)",
		"typescript declared in package.json",
		"package manager pnpm",
	}
	for _, want := range wantSignals {
		if !signalContains(report.Signals, want) {
			t.Errorf("expected a signal containing %q, got %v", want, report.Signals)
		}
	}
}

func TestScanFS_NPMLockfileSignal(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json":      {Data: []byte(`{"name": "api"}`), Mode: 0o644},
		"package-lock.json": {Data: []byte("{}"), Mode: 0o644},
	}

	report, err := ScanFS(fsys, Options{})
	if err != nil {
		t.Fatalf("ScanFS returned error: %v", err)
	}

	if report.PackageManager != PackageManagerNPM {
		t.Fatalf("expected npm, got %q", report.PackageManager)
	}
	if !signalContains(report.Signals, "package-lock.json selects package manager npm") {
		t.Fatalf("expected a package-lock.json signal, got %v", report.Signals)
	}
}

func TestScanFS_NoManifest(t *testing.T) {
	report, err := ScanFS(fstest.MapFS{}, Options{})
	if err != nil {
		t.Fatalf("ScanFS returned error: %v", err)
	}

	if report.Framework != nil {
		t.Fatalf("expected no framework, got %+v", report.Framework)
	}
	if report.Bundler != "" {
		t.Fatalf("expected no bundler, got %q", report.Bundler)
	}
	if report.Language != LanguageJS {
		t.Fatalf("expected js language, got %q", report.Language)
	}
	if report.PackageManager != PackageManagerNPM {
		t.Fatalf("expected npm default, got %q", report.PackageManager)
	}
	if !signalContains(report.Signals, "no package.json found") {
		t.Fatalf("expected a missing-manifest signal, got %v", report.Signals)
	}
}

func TestScanFS_MalformedManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": {Data: []byte("{not json"), Mode: 0o644},
	}

	if _, err := ScanFS(fsys, Options{}); err == nil {
		t.Fatal("expected an error for malformed package.json")
	}
}

func TestScanFS_PinOverridesDetection(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": {
			Data: []byte(`{
				"dependencies": {
					"react": "^18.2.0",
					"react-dom": "^18.2.0",
					"vite": "^4.0.0"
				}
			}`),
			Mode: 0o644,
		},
		"framescout.toml": {
			Data: []byte("framework = \"svelte\"\nbundler = \"vite\"\n"),
			Mode: 0o644,
		},
	}

	report, err := ScanFS(fsys, Options{})
	if err != nil {
		t.Fatalf("ScanFS returned error: %v", err)
	}

	if report.Framework == nil || report.Framework.Type != FrameworkSvelte {
		t.Fatalf("expected pinned svelte framework, got %+v", report.Framework)
	}
	if report.Bundler != BundlerVite {
		t.Fatalf("expected pinned vite bundler, got %q", report.Bundler)
	}
	if !report.Pinned {
		t.Fatal("expected the report to be marked pinned")
	}
	if !signalContains(report.Signals, "framescout.toml pins framework svelte") {
		t.Fatalf("expected a pin signal, got %v", report.Signals)
	}
}

func TestScanFS_InvalidPinIsAnError(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": {
			Data: []byte(`{"dependencies": {"svelte": "^3.44.0"}}`),
			Mode: 0o644,
		},
		"framescout.toml": {
			Data: []byte("framework = \"ember\"\n"),
			Mode: 0o644,
		},
	}

	if _, err := ScanFS(fsys, Options{}); err == nil {
		t.Fatal("expected an error for an unknown pinned framework")
	}
}

func TestScanFS_LoggerReceivesSteps(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": {
			Data: []byte(`{"dependencies": {"nuxt": "^2.15.8"}}`),
			Mode: 0o644,
		},
	}

	var lines []string
	opts := Options{Logger: func(format string, args ...any) {
		lines = append(lines, format)
	}}

	if _, err := ScanFS(fsys, opts); err != nil {
		t.Fatalf("ScanFS returned error: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected the logger to receive detection steps")
	}
}

func TestScan_ProjectOnDisk(t *testing.T) {
	root := t.TempDir()

	packageJSON := `{
		"name": "storefront",
		"dependencies": {
			"vue": "^3.2.31"
		},
		"devDependencies": {
			"vite": "^2.9.0"
		}
	}`
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(packageJSON), 0644); err != nil {
		t.Fatalf("failed to write package.json: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "yarn.lock"), []byte(""), 0644); err != nil {
		t.Fatalf("failed to write yarn.lock: %v", err)
	}

	report, err := Scan(root, Options{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if report.Framework == nil || report.Framework.Type != FrameworkVue3 {
		t.Fatalf("expected vue3 framework, got %+v", report.Framework)
	}
	if report.Bundler != BundlerVite {
		t.Fatalf("expected vite bundler, got %q", report.Bundler)
	}
	if report.PackageManager != PackageManagerYarn {
		t.Fatalf("expected yarn, got %q", report.PackageManager)
	}
}

func signalContains(signals []string, fragment string) bool {
	for _, s := range signals {
		if strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}
