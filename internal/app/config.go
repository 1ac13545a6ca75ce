package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"nocheckin/internal/store"
)

// ConfigFilename is the config file looked up under Home.
const ConfigFilename = "config.yml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home            string `yaml:"-"`                // state directory, e.g. $HOME/.nocheckin
	Passphrase      string `yaml:"-"`                // seals the profile when set
	Verbose         bool   `yaml:"-"`                // forces debug logging
	Backend         string `yaml:"backend"`          // file or sqlite
	Dataset         string `yaml:"dataset"`          // venue dataset path; empty uses the bundled one
	MetricsTextfile string `yaml:"metrics_textfile"` // Prometheus textfile written on Close
	LogLevel        string `yaml:"log_level"`        // debug, info, warn or error
	SealProfile     bool   `yaml:"seal_profile"`     // require a passphrase
}

// DefaultHome returns $HOME/.nocheckin.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nocheckin"), nil
}

// LoadConfig reads the YAML file at path over the defaults. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Backend: store.KindFile, LogLevel: "warn"}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the file-backed settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", store.KindFile, store.KindSQLite:
	default:
		return fmt.Errorf("invalid backend: %s (must be '%s' or '%s')", c.Backend, store.KindFile, store.KindSQLite)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for LogLevel, or debug when Verbose is set.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	return lvl, nil
}
