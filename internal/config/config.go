package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "finsight.yaml"

// Config represents the top-level finsight.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Files   FilesConfig   `yaml:"files"`
	Report  ReportConfig  `yaml:"report"`
}

// ProfileConfig identifies the workspace owner and display preferences.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// FilesConfig locates workspace documents relative to the workspace root.
type FilesConfig struct {
	Categories string `yaml:"categories"`
}

// ReportConfig controls summary rendering.
type ReportConfig struct {
	MaxRows int `yaml:"max_rows"`
}

// Load reads a finsight.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(profileName string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:     profileName,
			Currency: "$",
		},
		Files: FilesConfig{
			Categories: "categories.yaml",
		},
		Report: ReportConfig{
			MaxRows: 10,
		},
	}
}
