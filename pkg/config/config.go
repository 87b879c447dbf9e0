package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectConfig records a remembered framework choice for one project.
type ProjectConfig struct {
	ProjectPath string `json:"project_path"`
	Framework   string `json:"framework"`
	Bundler     string `json:"bundler,omitempty"`
}

type Config struct {
	Projects map[string]ProjectConfig `json:"projects"`
}

func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(LocalConfigDir, LocalConfigFile)
	}
	return filepath.Join(homeDir, LocalConfigDir, LocalConfigFile)
}

func LoadConfig() (*Config, error) {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, PermDirectory); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{
			Projects: make(map[string]ProjectConfig),
		}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Projects == nil {
		config.Projects = make(map[string]ProjectConfig)
	}

	return &config, nil
}

func (c *Config) SaveConfig() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, PermConfigFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetProject retrieves a remembered project by name
func (c *Config) GetProject(name string) (ProjectConfig, bool) {
	project, exists := c.Projects[name]
	return project, exists
}

// SetProject stores a remembered project by name
func (c *Config) SetProject(name string, project ProjectConfig) {
	if c.Projects == nil {
		c.Projects = make(map[string]ProjectConfig)
	}
	c.Projects[name] = project
}

// DeleteProject removes a remembered project and saves the config
func (c *Config) DeleteProject(name string) error {
	if _, exists := c.Projects[name]; !exists {
		return nil
	}

	delete(c.Projects, name)
	return c.SaveConfig()
}

// FindProjectByPath finds a remembered project by its project path
func (c *Config) FindProjectByPath(projectPath string) (string, ProjectConfig, bool) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return "", ProjectConfig{}, false
	}

	for name, project := range c.Projects {
		if project.ProjectPath == absPath {
			return name, project, true
		}
	}
	return "", ProjectConfig{}, false
}
