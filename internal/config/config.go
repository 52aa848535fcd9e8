// Package config provides configuration management for bbc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormats lists the accepted values for output_format.
var OutputFormats = []string{"html", "json", "markdown", "text"}

// Config holds the bbc configuration.
type Config struct {
	OutputFormat string `yaml:"output_format,omitempty"`
	MaxDepth     int    `yaml:"max_depth,omitempty"`
	Verbose      bool   `yaml:"verbose,omitempty"`
	NoColor      bool   `yaml:"no_color,omitempty"`
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.OutputFormat != "" && !isOutputFormat(c.OutputFormat) {
		return fmt.Errorf("output_format must be one of %s", strings.Join(OutputFormats, ", "))
	}
	if c.MaxDepth < -1 {
		return errors.New("max_depth must be -1 (unlimited), 0 (default) or positive")
	}
	return nil
}

func isOutputFormat(s string) bool {
	for _, f := range OutputFormats {
		if s == f {
			return true
		}
	}
	return false
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Precedence: BBC_* → NO_COLOR → existing config value
func (c *Config) LoadFromEnv() error {
	if format := os.Getenv("BBC_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
	if depth := os.Getenv("BBC_MAX_DEPTH"); depth != "" {
		n, err := strconv.Atoi(depth)
		if err != nil {
			return fmt.Errorf("invalid BBC_MAX_DEPTH %q: %w", depth, err)
		}
		c.MaxDepth = n
	}
	if verbose := os.Getenv("BBC_VERBOSE"); verbose != "" {
		c.Verbose = envBool(verbose)
	}
	if noColor := getEnvWithFallback("BBC_NO_COLOR", "NO_COLOR"); noColor != "" {
		c.NoColor = envBool(noColor)
	}
	return nil
}

// envBool treats any set value other than an explicit false as true, matching
// the NO_COLOR convention.
func envBool(v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// EnvVars lists every environment variable LoadFromEnv reads.
func EnvVars() []string {
	return []string{"BBC_OUTPUT_FORMAT", "BBC_MAX_DEPTH", "BBC_VERBOSE", "BBC_NO_COLOR", "NO_COLOR"}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bbc", "config.yml")
	}

	// Fall back to ~/.config/bbc/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".bbc", "config.yml")
	}

	return filepath.Join(home, ".config", "bbc", "config.yml")
}

// PathOrDefault returns path, or DefaultConfigPath when path is empty.
func PathOrDefault(path string) string {
	if path == "" {
		return DefaultConfigPath()
	}
	return path
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file is not an error; a malformed one is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
