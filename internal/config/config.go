// Package config loads and validates the devjunk configuration file.
// The file supplies defaults that command-line flags may override.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/crlotwhite/devjunk/internal/junk"
)

// Config is the on-disk configuration.
type Config struct {
	// Kinds restricts scanning to the listed catalog identifiers.
	// Empty means all known kinds.
	Kinds []string `yaml:"kinds"`

	// ExcludePaths are absolute paths whose subtrees are never
	// traversed.
	ExcludePaths []string `yaml:"exclude_paths"`

	// ExcludeNames are directory-name glob patterns that are never
	// traversed, e.g. "*.bak" or "legacy-*".
	ExcludeNames []string `yaml:"exclude_names"`

	// IncludeHidden enables descent into dot-directories.
	IncludeHidden bool `yaml:"include_hidden"`

	// MaxDepth bounds traversal depth below each root. Zero means
	// unlimited.
	MaxDepth int `yaml:"max_depth"`
}

// Default returns the configuration used when no file exists: all kinds,
// no excludes, hidden directories off, unlimited depth.
func Default() *Config {
	return &Config{}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "devjunk", "config.yaml"), nil
}

// Load reads the configuration from path. A missing file yields the
// default configuration rather than an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that every kind identifier is known and every exclude
// path is absolute.
func (c *Config) Validate() error {
	for _, id := range c.Kinds {
		if _, ok := junk.ParseKind(id); !ok {
			return fmt.Errorf("unknown junk kind: %s", id)
		}
	}
	for _, path := range c.ExcludePaths {
		if !filepath.IsAbs(path) {
			return fmt.Errorf("exclude path must be absolute: %s", path)
		}
	}
	return nil
}

// ScanConfig translates the file configuration plus the given roots into
// an engine scan configuration.
func (c *Config) ScanConfig(roots []string) (*junk.ScanConfig, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	kinds := make([]junk.Kind, 0, len(c.Kinds))
	for _, id := range c.Kinds {
		k, _ := junk.ParseKind(id)
		kinds = append(kinds, k)
	}

	return &junk.ScanConfig{
		Roots:         roots,
		IncludeKinds:  kinds,
		ExcludePaths:  c.ExcludePaths,
		ExcludeNames:  c.ExcludeNames,
		MaxDepth:      c.MaxDepth,
		IncludeHidden: c.IncludeHidden,
	}, nil
}
