// Package config loads ipcs settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "IPCS"

// ConfigFileEnv names the variable holding the optional YAML file path.
const ConfigFileEnv = EnvPrefix + "_CONFIG"

const (
	DefaultProcRoot = "/proc/sysvipc"
	DefaultLogLevel = "warn"
	DefaultColor    = ColorNever
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds settings that are not part of the command line.
// Precedence is defaults, then the YAML file, then the environment. Only
// IPCS_ prefixed variables are read; fields carry no envconfig tag because a
// tagged field would also match its bare, unprefixed name.
type Config struct {
	// Legacy reports one placeholder record per facility instead of
	// reading the kernel tables.
	Legacy   bool   `split_words:"true" yaml:"legacy"`
	ProcRoot string `split_words:"true" yaml:"proc_root"`
	// Source overrides the label printed in the banner.
	Source string `split_words:"true" yaml:"source"`
	Color  string `split_words:"true" yaml:"color"`

	LogLevel string `split_words:"true" yaml:"log_level"`
	LogDev   bool   `split_words:"true" yaml:"log_dev"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ProcRoot: DefaultProcRoot,
		Color:    DefaultColor,
		LogLevel: DefaultLogLevel,
	}
}

// Load builds the configuration from defaults, the file named by
// IPCS_CONFIG (if any) and IPCS_* environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if !isValidColor(c.Color) {
		return fmt.Errorf("invalid color mode: %s (valid: auto, always, never)", c.Color)
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}
	if !c.Legacy && c.ProcRoot == "" {
		return fmt.Errorf("proc root cannot be empty")
	}
	return nil
}

func isValidColor(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
