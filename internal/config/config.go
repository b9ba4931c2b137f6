package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = "packlist.yaml"

// Config holds every tunable of the packlist binary.
// The checklist itself is never part of it.
type Config struct {
	// Theme is one of classic, neon, mono.
	Theme string `yaml:"theme"`

	// Sort is the initial display order: input or description.
	Sort string `yaml:"sort"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme: "classic",
		Sort:  "input",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs into the process environment without
// overwriting variables that are already set. An empty path means ".env";
// a missing file is ignored.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed loading env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := getenv("PACKLIST_THEME"); v != "" {
		c.Theme = v
	}
	if v := getenv("PACKLIST_SORT"); v != "" {
		c.Sort = v
	}
	if v := getenv("PACKLIST_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenv("PACKLIST_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

func getenv(key string) string { return strings.TrimSpace(os.Getenv(key)) }
