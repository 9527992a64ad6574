// Package config loads the checker's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// History contains configuration for the check-history database.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Output contains configuration for result formatting.
type Output struct {
	Precision int `toml:"precision"`
}

// Logging contains configuration for log verbosity.
type Logging struct {
	Level string `toml:"level"`
}

// Config is the root configuration for the checker.
type Config struct {
	History History `toml:"history"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		History: History{Enabled: true, Path: defaultDataPath("history.db")},
		Output:  Output{Precision: 2},
		Logging: Logging{Level: "info"},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return defaultDataPath("config.toml")
}

func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".simcheck", name)
}

// Load reads the TOML configuration at path. A missing file is not an
// error: defaults apply. A present but malformed or invalid file is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Output.Precision < 0 || c.Output.Precision > 10 {
		return fmt.Errorf("output.precision must be between 0 and 10, got %d", c.Output.Precision)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path cannot be empty when history is enabled")
	}
	return nil
}
