// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for adopt configuration.
	DefaultConfigDir = ".adopt"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDBFile is the default catalog database file name.
	DefaultDBFile = "listings.db"
)

// Environment variables that override the config file.
const (
	EnvDBPath   = "ADOPT_DB_PATH"
	EnvTimezone = "ADOPT_TIMEZONE"
	EnvAddr     = "ADOPT_ADDR"
)

// Config holds static configuration (read-only after load).
type Config struct {
	SQLite SQLiteConfig `yaml:"sqlite,omitempty"`
	Clock  ClockConfig  `yaml:"clock,omitempty"`
	Server ServerConfig `yaml:"server,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite catalog database.
type SQLiteConfig struct {
	// Path is the database file. Relative paths are resolved against the
	// directory that contains .adopt.
	Path string `yaml:"path,omitempty"`
}

// ClockConfig holds configuration for the calendar ages are computed on.
type ClockConfig struct {
	// Timezone is an IANA name, "UTC", or "Local".
	Timezone string `yaml:"timezone,omitempty"`
}

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Addr            string        `yaml:"addr,omitempty"`
	ReadTimeout     time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout    time.Duration `yaml:"write_timeout,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		SQLite: SQLiteConfig{
			Path: filepath.Join(DefaultConfigDir, DefaultDBFile),
		},
		Clock: ClockConfig{
			Timezone: "Local",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load loads configuration from the .adopt directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'adopt init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv(EnvDBPath); path != "" {
		c.SQLite.Path = path
	}
	if tz := os.Getenv(EnvTimezone); tz != "" {
		c.Clock.Timezone = tz
	}
	if addr := os.Getenv(EnvAddr); addr != "" {
		c.Server.Addr = addr
	}
}

// DBPath returns the SQLite path, resolved against basePath when relative.
// The in-memory path ":memory:" is returned unchanged.
func (c *Config) DBPath(basePath string) string {
	path := c.SQLite.Path
	if path == "" {
		path = filepath.Join(DefaultConfigDir, DefaultDBFile)
	}
	if path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(basePath, path)
}

// ConfigDir returns the path to the .adopt config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if an adopt config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
