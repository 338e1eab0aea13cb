// Package config loads the bar configuration file and builds the module
// set it describes.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Dir returns the plank configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "plank")
}

// File returns the path to plank.toml.
func File() string {
	return filepath.Join(Dir(), "plank.toml")
}

// Config is the full bar configuration.
type Config struct {
	Bar     BarConfig      `toml:"bar"`
	Modules []ModuleConfig `toml:"module"`
}

// BarConfig styles the strip itself.
type BarConfig struct {
	Height     int    `toml:"height"`
	Gap        int    `toml:"gap"`
	Foreground string `toml:"foreground"`
	Accent     string `toml:"accent"`
}

// ModuleConfig describes one module entry. Type selects the factory; the
// other fields are per-type options with per-type defaults.
type ModuleConfig struct {
	Type     string `toml:"type"`
	ID       string `toml:"id"`
	Format   string `toml:"format"`
	Text     string `toml:"text"`
	Icon     string `toml:"icon"`
	Command  string `toml:"command"`
	Chunk    string `toml:"chunk"`
	Width    int    `toml:"width"`
	Line     bool   `toml:"line"`
	Interval int    `toml:"interval"` // seconds; 0 means the type default
}

// Default returns the configuration used when no file exists: a clock, a
// date, and a separator between them.
func Default() *Config {
	return &Config{
		Bar: BarConfig{Height: 1, Gap: 2},
		Modules: []ModuleConfig{
			{Type: "clock", ID: "clock"},
			{Type: "separator", ID: "sep", Width: 2},
			{Type: "date", ID: "date"},
		},
	}
}

// Load reads a TOML config file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if cfg.Bar.Height < 1 {
		cfg.Bar.Height = 1
	}
	if cfg.Bar.Gap < 0 {
		cfg.Bar.Gap = 0
	}
	return &cfg, nil
}
