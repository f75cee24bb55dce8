// Package config loads the Hexpage TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/hexpage/internal/logging"
)

// DefaultBytesPerRow is the row width used when no config file exists.
const DefaultBytesPerRow = 16

var ErrInvalid = errors.New("invalid config value")

// Theme holds lipgloss color strings (ANSI index or #rrggbb). Empty means the
// terminal default.
type Theme struct {
	Address   string `toml:"address"`
	Hex       string `toml:"hex"`
	Preview   string `toml:"preview"`
	Cursor    string `toml:"cursor"`
	Scrollbar string `toml:"scrollbar"`
	Grip      string `toml:"grip"`
	Label     string `toml:"label"`
}

type Config struct {
	// BytesPerRow fixes the row width; 0 fits rows to the terminal width.
	BytesPerRow int    `toml:"bytes_per_row"`
	LogLevel    string `toml:"log_level"`
	// LogFile enables logging when set; the terminal belongs to the UI.
	LogFile     string `toml:"log_file"`
	Placeholder string `toml:"placeholder"`
	Theme       Theme  `toml:"theme"`
}

// ParseError reports a malformed config file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func Default() Config {
	return Config{
		BytesPerRow: DefaultBytesPerRow,
		LogLevel:    "info",
		Placeholder: ".",
		Theme: Theme{
			Address:   "240",
			Preview:   "250",
			Cursor:    "212",
			Scrollbar: "238",
			Grip:      "250",
			Label:     "250",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/hexpage/config.toml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "hexpage", "config.toml"), nil
}

// Load reads path over Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML data over Default() and validates the result. source is
// only used in errors.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: source, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BytesPerRow < 0 {
		return fmt.Errorf("%w: bytes_per_row must be >= 0, got %d", ErrInvalid, c.BytesPerRow)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return nil
}

// Level returns the parsed log level; invalid values were rejected by
// Validate, so this falls back to info.
func (c Config) Level() logging.Level {
	lv, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.LevelInfo
	}
	return lv
}
