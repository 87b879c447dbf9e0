package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateProjectPath validates and cleans a project path
// Returns the cleaned absolute path or an error
func ValidateProjectPath(projectPath string) (string, error) {
	projectPath = filepath.Clean(projectPath)

	info, err := os.Stat(projectPath)
	if err != nil {
		return "", fmt.Errorf("cannot access path '%s': %w", projectPath, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("path '%s' is not a directory", projectPath)
	}

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return projectPath, nil // Return cleaned path if we can't get absolute
	}

	return absPath, nil
}

// ProjectNameFromPath derives a human-friendly project name from a path.
// Relative paths like "." resolve to the actual directory name.
func ProjectNameFromPath(projectPath string) string {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		absPath = filepath.Clean(projectPath)
	}

	name := filepath.Base(absPath)
	if name == "." || name == string(filepath.Separator) {
		return "project"
	}
	return name
}
