// Package config loads and persists fund's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all fund configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Journal    JournalConfig    `toml:"journal"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds paths and other non-display preferences.
type GeneralConfig struct {
	FundFile string `toml:"fund_file,omitempty"`
}

// JournalConfig holds transaction journal settings.
type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// AppearanceConfig holds display settings.
type AppearanceConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	Theme          string `toml:"theme"`
}

// DefaultConfig is the starting point for fresh installs; Load layers the
// file's values on top of it, so partial files stay valid.
func DefaultConfig() Config {
	return Config{
		Journal: JournalConfig{
			Enabled: true,
		},
		Appearance: AppearanceConfig{
			CurrencySymbol: "$",
			Theme:          "flexoki-dark",
		},
	}
}

func xdgPath(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, "fund")
	}
	home, _ := os.UserHomeDir()
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, "fund")...)
}

// ConfigDir resolves the config directory, honoring XDG_CONFIG_HOME.
func ConfigDir() string {
	return xdgPath("XDG_CONFIG_HOME", ".config")
}

// DataDir resolves the data directory, honoring XDG_DATA_HOME.
func DataDir() string {
	return xdgPath("XDG_DATA_HOME", ".local", "share")
}

// ConfigPath is the config.toml location under ConfigDir.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file. A missing file is not an error: callers get
// the defaults, and `fund setup` writes the real file later.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(ConfigPath(), &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to the config path, creating the directory on first run.
func Save(cfg Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(ConfigPath(), data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// FundFilePath returns the fund file location, from env var or config, in
// that order, falling back to the data directory.
func FundFilePath(cfg Config) string {
	if p := os.Getenv("FUND_FILE"); p != "" {
		return p
	}
	if cfg.General.FundFile != "" {
		return cfg.General.FundFile
	}
	return filepath.Join(DataDir(), "funds")
}

// JournalPath returns the journal database location.
func JournalPath(cfg Config) string {
	if cfg.Journal.Path != "" {
		return cfg.Journal.Path
	}
	return filepath.Join(DataDir(), "journal.db")
}

// Exists reports whether a config file has been written yet.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
