// Package config loads the optional TOML configuration file. All values
// have working defaults; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vslugin/long-term-booking/internal/constants"
	"github.com/vslugin/long-term-booking/internal/i18n"
)

// Config holds user preferences that rarely change between runs
type Config struct {
	Language        string   `toml:"language"`         // "en" or "de"
	DefaultWeekdays []string `toml:"default_weekdays"` // weekday names preselected in the form
	SeatPrefix      string   `toml:"seat_prefix"`      // prepended to the seat number on output
	OutputDir       string   `toml:"output_dir"`       // default directory for generated files
	Timezone        string   `toml:"timezone"`         // IANA name or "Local", used for the timestamp column
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Language:        string(i18n.English),
		DefaultWeekdays: []string{"mon", "tue", "wed", "thu", "fri"},
		SeatPrefix:      constants.DefaultSeatPrefix,
		OutputDir:       ".",
		Timezone:        "Local",
	}
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	path = ExpandHome(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !i18n.Language(c.Language).Valid() {
		return fmt.Errorf("unknown language %q (use en or de)", c.Language)
	}
	if c.SeatPrefix == "" {
		return fmt.Errorf("seat_prefix must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
