package detector

import (
	"io/fs"

	"framescout/pkg/manifest"
)

// Lockfiles and rc files that identify a package manager.
const (
	BunLockbFile = "bun.lockb"
	BunLockFile  = "bun.lock"
	YarnRCFile   = ".yarnrc.yml"
	PnpmLockFile = "pnpm-lock.yaml"
	YarnLockFile = "yarn.lock"
	NPMLockFile  = "package-lock.json"
)

// DetectPackageManager identifies the package manager a project is set up
// for, along with the file that decided it when one did. An explicit
// packageManager field in the manifest wins and carries no marker; lockfiles
// break the remaining ties, most specific first. npm is the fallback.
func DetectPackageManager(fsys fs.FS, m manifest.Manifest) (name, marker string) {
	has := func(file string) bool {
		_, err := fs.Stat(fsys, file)
		return err == nil
	}

	if field := m.PackageManagerName(); field != "" {
		if field == PackageManagerYarn && has(YarnRCFile) {
			return PackageManagerYarnBerry, YarnRCFile
		}
		switch field {
		case PackageManagerNPM, PackageManagerPNPM, PackageManagerYarn, PackageManagerBun:
			return field, ""
		}
	}

	switch {
	case has(BunLockbFile):
		return PackageManagerBun, BunLockbFile
	case has(BunLockFile):
		return PackageManagerBun, BunLockFile
	case has(YarnRCFile):
		return PackageManagerYarnBerry, YarnRCFile
	case has(PnpmLockFile):
		return PackageManagerPNPM, PnpmLockFile
	case has(YarnLockFile):
		return PackageManagerYarn, YarnLockFile
	case has(NPMLockFile):
		return PackageManagerNPM, NPMLockFile
	default:
		return PackageManagerNPM, ""
	}
}
