package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# adopt-card configuration

sqlite:
  path: .adopt/listings.db
  # or set ADOPT_DB_PATH

clock:
  # IANA timezone used to decide what "today" is (or set ADOPT_TIMEZONE)
  timezone: Local

server:
  addr: ":8080"
  read_timeout: 5s
  write_timeout: 10s
  shutdown_timeout: 10s
`

// WriteDefault creates the .adopt directory and writes the commented default
// config. It never replaces an existing file.
func WriteDefault(basePath string) error {
	return writeConfig(basePath, []byte(DefaultConfigYAML), false)
}

// Write stores cfg as the config file, replacing any existing one.
func Write(basePath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return writeConfig(basePath, data, true)
}

func writeConfig(basePath string, data []byte, replace bool) error {
	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if replace {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	path := ConfigFilePath(basePath)
	f, err := os.OpenFile(path, flags, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing config file: %w", err)
	}
	return f.Close()
}
