// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log       LogConfig       `toml:"log"`
	Database  DatabaseConfig  `toml:"database"`
	Search    SearchConfig    `toml:"search"`
	Selection SelectionConfig `toml:"selection"`
	Library   LibraryConfig   `toml:"library"`
	Cache     CacheConfig     `toml:"cache"`
	Providers ProvidersConfig `toml:"providers"`
}

// LogConfig controls log level and optional rotated file output.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"` // empty logs to stderr
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type SearchConfig struct {
	Debounce       time.Duration `toml:"debounce"`
	MaxConcurrency int           `toml:"max_concurrency"`
}

// SelectionConfig picks the current content provider and bounds how long
// commands wait for it to become available.
type SelectionConfig struct {
	Provider string        `toml:"provider"`
	Attempts int           `toml:"attempts"`
	Delay    time.Duration `toml:"delay"`
}

type LibraryConfig struct {
	DefaultSort string `toml:"default_sort"`
}

type CacheConfig struct {
	DetailsTTL time.Duration `toml:"details_ttl"`
	ClientTTL  time.Duration `toml:"client_ttl"`
}

// ProvidersConfig enables content providers. Providers register in the
// order tmdb, tvdb.
type ProvidersConfig struct {
	TMDB *TMDBConfig `toml:"tmdb"`
	TVDB *TVDBConfig `toml:"tvdb"`
}

type TMDBConfig struct {
	Enabled           bool   `toml:"enabled"`
	APIKey            string `toml:"api_key"`
	BaseURL           string `toml:"base_url"`
	SeasonConcurrency int    `toml:"season_concurrency"`
}

type TVDBConfig struct {
	Enabled bool   `toml:"enabled"`
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// Load reads, substitutes, parses and validates the configuration file.
// Unresolved environment variables and validation failures are reported
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation parses the configuration file and applies defaults
// but skips validation and tolerates unresolved environment variables.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = 28
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath()
	}
	if c.Search.Debounce == 0 {
		c.Search.Debounce = 300 * time.Millisecond
	}
	if c.Search.MaxConcurrency == 0 {
		c.Search.MaxConcurrency = 8
	}
	if c.Selection.Attempts == 0 {
		c.Selection.Attempts = 5
	}
	if c.Selection.Delay == 0 {
		c.Selection.Delay = 500 * time.Millisecond
	}
	if c.Library.DefaultSort == "" {
		c.Library.DefaultSort = "alphabetical_az"
	}
	if c.Cache.DetailsTTL == 0 {
		c.Cache.DetailsTTL = 6 * time.Hour
	}
	if c.Cache.ClientTTL == 0 {
		c.Cache.ClientTTL = time.Hour
	}
	if t := c.Providers.TMDB; t != nil {
		if t.BaseURL == "" {
			t.BaseURL = "https://api.themoviedb.org"
		}
		if t.SeasonConcurrency == 0 {
			t.SeasonConcurrency = 4
		}
	}
	if t := c.Providers.TVDB; t != nil && t.BaseURL == "" {
		t.BaseURL = "https://api4.thetvdb.com/v4"
	}
}

// EnabledProviders lists the content providers switched on, in
// registration order.
func (c *Config) EnabledProviders() []string {
	var names []string
	if c.Providers.TMDB != nil && c.Providers.TMDB.Enabled {
		names = append(names, "tmdb")
	}
	if c.Providers.TVDB != nil && c.Providers.TVDB.Enabled {
		names = append(names, "tvdb")
	}
	return names
}
