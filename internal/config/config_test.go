package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a minimal valid configuration.
const validConfigYAML = `
dataset:
  path: "plants_processed.csv"
logging:
  level: "debug"
display:
  max_rows: 25
filters:
  countries: ["Germany", "France"]
  min_capacity: 100
`

func TestLoad_Valid(t *testing.T) {
	configPath := createTempConfigFile(t, validConfigYAML)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected level 'debug', got %q", cfg.Logging.Level)
	}

	if cfg.Display.MaxRows != 25 {
		t.Errorf("Expected max_rows 25, got %d", cfg.Display.MaxRows)
	}

	// Unset fields keep their defaults.
	if cfg.Display.MapWidth != Default().Display.MapWidth {
		t.Errorf("Expected default map width, got %d", cfg.Display.MapWidth)
	}

	if len(cfg.Filters.Countries) != 2 {
		t.Errorf("Expected 2 default countries, got %d", len(cfg.Filters.Countries))
	}

	if cfg.Filters.MinCapacity == nil || *cfg.Filters.MinCapacity != 100 {
		t.Errorf("Expected min_capacity 100, got %v", cfg.Filters.MinCapacity)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "dataset: [}")

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config should validate, got %v", err)
	}
}

func TestValidate_MissingDatasetPath(t *testing.T) {
	cfg := Default()
	cfg.Dataset.Path = ""

	if err := cfg.Validate(); !errors.Is(err, ErrMissingDatasetPath) {
		t.Fatalf("Expected ErrMissingDatasetPath, got %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("Expected ErrInvalidLogLevel, got %v", err)
	}
}

func TestValidate_NegativeMaxRows(t *testing.T) {
	cfg := Default()
	cfg.Display.MaxRows = -1

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidMaxRows) {
		t.Fatalf("Expected ErrInvalidMaxRows, got %v", err)
	}
}

func TestValidate_InvalidMapSize(t *testing.T) {
	cfg := Default()
	cfg.Display.MapHeight = 0

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidMapSize) {
		t.Fatalf("Expected ErrInvalidMapSize, got %v", err)
	}
}

func TestValidate_InvertedCapacityBounds(t *testing.T) {
	cfg := Default()
	lo, hi := 500.0, 100.0
	cfg.Filters.MinCapacity = &lo
	cfg.Filters.MaxCapacity = &hi

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("Expected ErrInvalidCapacity, got %v", err)
	}
}
