// Package config provides configuration management for the plant explorer.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingDatasetPath = errors.New("dataset.path is required")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidMaxRows     = errors.New("display.max_rows must be non-negative")
	ErrInvalidMapSize     = errors.New("display.map_width and display.map_height must be positive")
	ErrInvalidCapacity    = errors.New("filters.min_capacity cannot exceed filters.max_capacity")
)

// Config is the complete explorer configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
	Display DisplayConfig `yaml:"display"`
	Filters FiltersConfig `yaml:"filters"`
}

// DatasetConfig locates the input file.
type DatasetConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DisplayConfig bounds terminal output.
type DisplayConfig struct {
	MaxRows   int `yaml:"max_rows"`
	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`
}

// FiltersConfig holds default filters applied before any command-line
// selection.
type FiltersConfig struct {
	Owners      []string `yaml:"owners"`
	Regions     []string `yaml:"regions"`
	Countries   []string `yaml:"countries"`
	MinCapacity *float64 `yaml:"min_capacity"`
	MaxCapacity *float64 `yaml:"max_capacity"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{Path: "plants_processed.csv"},
		Logging: LoggingConfig{Level: "info"},
		Display: DisplayConfig{MaxRows: 50, MapWidth: 72, MapHeight: 24},
	}
}

// Load reads configuration from a YAML file, filling unset fields from
// the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return ErrMissingDatasetPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Display.MaxRows < 0 {
		return ErrInvalidMaxRows
	}

	if c.Display.MapWidth <= 0 || c.Display.MapHeight <= 0 {
		return ErrInvalidMapSize
	}

	if c.Filters.MinCapacity != nil && c.Filters.MaxCapacity != nil &&
		*c.Filters.MinCapacity > *c.Filters.MaxCapacity {
		return ErrInvalidCapacity
	}

	return nil
}
