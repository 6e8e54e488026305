// Package config loads mockdiff settings from a YAML file.
//
// Both binaries start from Default(), overlay the file given by --config (or
// ~/.mockdiff/config.yaml when present), then apply command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every setting the tools read.
type Config struct {
	// Store is the root path segment, e.g. "orders".
	Store string `yaml:"store"`
	// Database is the JSON document holding the authoritative records.
	Database string `yaml:"database"`
	// Candidate is the JSON document holding the mock records.
	Candidate string `yaml:"candidate"`
	// Staged holds transfers as pending updates until an explicit commit.
	Staged bool `yaml:"staged"`
	// Backup writes <database>.bak before the first write.
	Backup bool `yaml:"backup"`

	Log LogConfig `yaml:"log"`
}

// LogConfig mirrors logger.Options in file form.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Store:  "store",
		Backup: true,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.mockdiff/config.yaml, or "" if there is no home dir.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mockdiff", "config.yaml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings needed to open a record pair.
func (c Config) Validate() error {
	if c.Store == "" {
		return errors.New("config: store name is required")
	}
	if c.Database == "" && c.Candidate == "" {
		return errors.New("config: at least one of database or candidate is required")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}
