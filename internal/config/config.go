package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xolan/vibe/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "vibe"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultSlot is the persistence slot name used when none is configured
	DefaultSlot = "vibeCheckEntries"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the application configuration
type Config struct {
	// Backend selects where entries are persisted (file or sqlite)
	Backend string `toml:"backend"`
	// DataDir overrides the directory holding the slot file or database
	DataDir string `toml:"data_dir"`
	// Slot is the name of the persistence slot
	Slot string `toml:"slot"`
	// Theme is the bubbletint theme ID used by the TUI
	Theme string `toml:"theme"`
	// LogLevel is the minimum level written to LogFile
	LogLevel string `toml:"log_level"`
	// LogFile enables JSON logging to the given path
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults.
// - backend: "file" (one JSON document per slot)
// - data_dir: "" (the application config directory)
// - slot: "vibeCheckEntries"
// - theme: "" (built-in default theme)
// - log_level: "info"
// - log_file: "" (logging disabled)
func DefaultConfig() Config {
	return Config{
		Backend:  BackendFile,
		Slot:     DefaultSlot,
		LogLevel: "info",
	}
}

// GetConfigPath returns the path to the config file.
// Uses the user config directory and creates the app directory if needed.
func GetConfigPath() (string, error) {
	appDir, err := osutil.AppDir(AppName)
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file if it exists and returns the defaults
// otherwise. Errors other than a missing file are returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}
	return Load(path)
}

// Normalize lowercases enumerated values and fills blanks with defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = defaults.Backend
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	c.Slot = strings.TrimSpace(c.Slot)
	if c.Slot == "" {
		c.Slot = defaults.Slot
	}
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.LogFile = strings.TrimSpace(c.LogFile)
	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.Backend != BackendFile && c.Backend != BackendSQLite {
		return fmt.Errorf("invalid backend %q: must be %q or %q", c.Backend, BackendFile, BackendSQLite)
	}

	validLevel := false
	for _, l := range validLogLevels {
		if c.LogLevel == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log_level %q: must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if strings.ContainsAny(c.Slot, `/\`) {
		return fmt.Errorf("invalid slot %q: must not contain path separators", c.Slot)
	}
	return nil
}

// ResolveDataDir returns the directory holding persisted entries,
// creating it if needed. An empty DataDir means the app config directory.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir == "" {
		return osutil.AppDir(AppName)
	}
	if err := osutil.EnsureDir(c.DataDir); err != nil {
		return "", err
	}
	return c.DataDir, nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# vibe configuration file
# Uncomment and change the values you want to override.

# Storage backend: "file" keeps one JSON document per slot,
# "sqlite" keeps slots in a vibe.db database.
# backend = "file"

# Directory for the slot file or database.
# Defaults to the directory holding this file.
# data_dir = "/home/me/journal"

# Name of the persistence slot.
# slot = "vibeCheckEntries"

# TUI theme (any bubbletint theme ID, e.g. "dracula", "nord", "tokyo_night").
# theme = "dracula"

# Write JSON logs to a file at the given level (debug, info, warn, error).
# log_file = "/tmp/vibe.log"
# log_level = "info"
`
}
