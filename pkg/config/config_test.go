package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// setupTestConfigDir creates a temporary directory for testing
// and sets the HOME env var to use it
func setupTestConfigDir(t *testing.T) (string, func()) {
	tmpDir, err := os.MkdirTemp("", "framescout-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	// Override HOME environment variable
	originalHome := os.Getenv("HOME")
	testHome := filepath.Join(tmpDir, "home")
	os.Setenv("HOME", testHome)

	cleanup := func() {
		os.Setenv("HOME", originalHome)
		os.RemoveAll(tmpDir)
	}

	return testHome, cleanup
}

func TestLoadConfig(t *testing.T) {
	_, cleanup := setupTestConfigDir(t)
	defer cleanup()

	// Loading non-existent config should return empty config
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error loading non-existent config, got: %v", err)
	}

	if cfg.Projects == nil {
		t.Error("Expected Projects map to be initialized")
	}

	if len(cfg.Projects) != 0 {
		t.Error("Expected empty Projects map")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	_, cleanup := setupTestConfigDir(t)
	defer cleanup()

	cfg := &Config{
		Projects: map[string]ProjectConfig{
			"myapp": {
				ProjectPath: "/path/to/project",
				Framework:   "react",
				Bundler:     "vite",
			},
		},
	}

	if err := cfg.SaveConfig(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedCfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(loadedCfg.Projects) != 1 {
		t.Errorf("Expected 1 project, got %d", len(loadedCfg.Projects))
	}

	project, exists := loadedCfg.Projects["myapp"]
	if !exists {
		t.Fatal("Expected 'myapp' project to exist")
	}

	if project.ProjectPath != "/path/to/project" {
		t.Errorf("Expected ProjectPath '/path/to/project', got '%s'", project.ProjectPath)
	}
	if project.Framework != "react" {
		t.Errorf("Expected Framework 'react', got '%s'", project.Framework)
	}
	if project.Bundler != "vite" {
		t.Errorf("Expected Bundler 'vite', got '%s'", project.Bundler)
	}
}

func TestSetProject(t *testing.T) {
	_, cleanup := setupTestConfigDir(t)
	defer cleanup()

	cfg, _ := LoadConfig()

	cfg.SetProject("storefront", ProjectConfig{
		ProjectPath: "/path/to/app",
		Framework:   "vue3",
	})

	project, exists := cfg.Projects["storefront"]
	if !exists {
		t.Error("Expected project to be added to Projects map")
	}

	if project.Framework != "vue3" {
		t.Errorf("Expected Framework 'vue3', got '%s'", project.Framework)
	}
}

func TestGetProject(t *testing.T) {
	_, cleanup := setupTestConfigDir(t)
	defer cleanup()

	cfg := &Config{
		Projects: map[string]ProjectConfig{
			"myapp": {
				ProjectPath: "/path/to/project",
				Framework:   "nextjs",
			},
		},
	}

	project, exists := cfg.GetProject("myapp")
	if !exists {
		t.Error("Expected project to exist")
	}
	if project.Framework != "nextjs" {
		t.Errorf("Expected Framework 'nextjs', got '%s'", project.Framework)
	}

	_, exists = cfg.GetProject("nonexistent")
	if exists {
		t.Error("Expected project to not exist")
	}
}

func TestDeleteProject(t *testing.T) {
	_, cleanup := setupTestConfigDir(t)
	defer cleanup()

	cfg := &Config{
		Projects: map[string]ProjectConfig{
			"app1": {ProjectPath: "/path/to/app1", Framework: "nextjs"},
			"app2": {ProjectPath: "/path/to/app2", Framework: "svelte"},
		},
	}

	if err := cfg.SaveConfig(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if err := cfg.DeleteProject("app1"); err != nil {
		t.Fatalf("Failed to delete project: %v", err)
	}

	if _, exists := cfg.Projects["app1"]; exists {
		t.Error("Expected app1 to be deleted from memory")
	}

	if _, exists := cfg.Projects["app2"]; !exists {
		t.Error("Expected app2 to still exist")
	}

	// Reload config and verify persistence
	loadedCfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if _, exists := loadedCfg.Projects["app1"]; exists {
		t.Error("Expected app1 to be deleted from saved config")
	}

	if _, exists := loadedCfg.Projects["app2"]; !exists {
		t.Error("Expected app2 to exist in saved config")
	}
}

func TestDeleteProjectIdempotent(t *testing.T) {
	_, cleanup := setupTestConfigDir(t)
	defer cleanup()

	cfg, _ := LoadConfig()

	if err := cfg.DeleteProject("nonexistent"); err != nil {
		t.Errorf("Expected no error deleting non-existent project, got: %v", err)
	}

	if err := cfg.DeleteProject("nonexistent"); err != nil {
		t.Errorf("DeleteProject should be idempotent, got error: %v", err)
	}
}

func TestFindProjectByPath(t *testing.T) {
	testHome, cleanup := setupTestConfigDir(t)
	defer cleanup()

	path1 := filepath.Join(testHome, "projects", "app1")
	path2 := filepath.Join(testHome, "projects", "app2")

	cfg := &Config{
		Projects: map[string]ProjectConfig{
			"myapp1": {ProjectPath: path1, Framework: "nextjs"},
			"myapp2": {ProjectPath: path2, Framework: "angular"},
		},
	}

	name, project, found := cfg.FindProjectByPath(path1)
	if !found {
		t.Error("Expected to find project by path")
	}
	if name != "myapp1" {
		t.Errorf("Expected name 'myapp1', got '%s'", name)
	}
	if project.Framework != "nextjs" {
		t.Errorf("Expected Framework 'nextjs', got '%s'", project.Framework)
	}

	_, _, found = cfg.FindProjectByPath("/nonexistent/path")
	if found {
		t.Error("Expected to not find project")
	}
}

func TestConfigPersistence(t *testing.T) {
	testHome, cleanup := setupTestConfigDir(t)
	defer cleanup()

	cfg := &Config{
		Projects: map[string]ProjectConfig{
			"app1": {ProjectPath: "/path/1", Framework: "nextjs"},
			"app2": {ProjectPath: "/path/2", Framework: "vue2", Bundler: "webpack"},
		},
	}
	cfg.SaveConfig()

	// Verify file exists
	configPath := filepath.Join(testHome, ".framescout", "config.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file should exist")
	}

	// Verify file is valid JSON
	data, _ := os.ReadFile(configPath)
	var parsed Config
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Errorf("Config file should be valid JSON: %v", err)
	}

	// Delete one project
	cfg.DeleteProject("app1")

	// Verify deletion persisted
	data, _ = os.ReadFile(configPath)
	var parsedAfterDelete Config
	if err := json.Unmarshal(data, &parsedAfterDelete); err != nil {
		t.Fatalf("Failed to parse config after delete: %v", err)
	}
	if parsedAfterDelete.Projects == nil {
		t.Fatal("Projects should not be nil")
	}
	if _, exists := parsedAfterDelete.Projects["app1"]; exists {
		t.Error("Deleted project should not be in saved config")
	}
	if parsedAfterDelete.Projects["app2"].Bundler != "webpack" {
		t.Error("Expected app2 bundler to survive the delete")
	}
}
