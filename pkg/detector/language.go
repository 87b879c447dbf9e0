package detector

import (
	"io/fs"

	"framescout/pkg/manifest"
)

// TSConfigFileName marks a TypeScript project even when the typescript
// package is hoisted out of the local manifest.
const TSConfigFileName = "tsconfig.json"

// detectLanguage classifies the project as TypeScript or JavaScript. A
// declared typescript dependency wins; a tsconfig.json is accepted as a
// fallback for monorepo setups where the compiler lives in the workspace
// root.
func detectLanguage(fsys fs.FS, m manifest.Manifest) string {
	if m.Declares("typescript") {
		return LanguageTS
	}
	if _, err := fs.Stat(fsys, TSConfigFileName); err == nil {
		return LanguageTS
	}
	return LanguageJS
}

func languageSignal(m manifest.Manifest) string {
	if m.Declares("typescript") {
		return "typescript declared in " + manifest.FileName
	}
	return TSConfigFileName + " present"
}
