// Package config handles configuration loading and validation for chore.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/chore/internal/core/category"
)

// Config holds the application configuration.
type Config struct {
	// ColorPalette is cycled through when categories are created
	// without an explicit color.
	ColorPalette []string `yaml:"color_palette"`
	DataDir      string   `yaml:"-"` // set by caller, not from config file
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ColorPalette: category.DefaultPalette,
	}
}

// Load reads configuration from the given path and sets the data
// directory. If configPath is empty or doesn't exist, returns defaults
// with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	if len(c.ColorPalette) == 0 {
		c.ColorPalette = category.DefaultPalette
	}
}

// TasksFile returns the path of the task collection file.
func (c *Config) TasksFile() string {
	return filepath.Join(c.DataDir, "tasks.json")
}

// CategoriesFile returns the path of the category collection file.
func (c *Config) CategoriesFile() string {
	return filepath.Join(c.DataDir, "categories.json")
}
