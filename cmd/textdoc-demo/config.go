package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the demo's settings.
type Config struct {
	// Language is the Chroma lexer name used for character classes.
	// Empty means detect from the file name.
	Language string `toml:"language"`

	// TabWidth is the number of columns a tab advances to.
	TabWidth int `toml:"tab_width"`

	// Eol is the EOL code inserted by the Enter key: "lf", "cr" or "crlf".
	Eol string `toml:"eol"`

	// BracketSearchLimit caps bracket-match scans, 0 for unlimited.
	BracketSearchLimit int `toml:"bracket_search_limit"`

	// LogFile receives debug logs; empty disables file logging.
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		TabWidth:           4,
		Eol:                "lf",
		BracketSearchLimit: 20000,
	}
}

// LoadConfig reads settings from a TOML file, overlaying the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	return cfg, nil
}

// EolCode converts the config's eol name to the code itself.
func (c Config) EolCode() string {
	switch c.Eol {
	case "cr":
		return "\r"
	case "crlf":
		return "\r\n"
	default:
		return "\n"
	}
}
