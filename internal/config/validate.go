// internal/config/validate.go
package config

import (
	"fmt"
	"slices"

	"github.com/vmunix/couchtv/pkg/provider"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, "log: rotation limits must not be negative")
	}

	if c.Database.Path == "" {
		errs = append(errs, "database.path: required")
	}

	if c.Search.Debounce < 0 {
		errs = append(errs, fmt.Sprintf("search.debounce: must not be negative, got %s", c.Search.Debounce))
	}
	if c.Search.MaxConcurrency < 0 {
		errs = append(errs, fmt.Sprintf("search.max_concurrency: must be positive, got %d", c.Search.MaxConcurrency))
	}

	if c.Selection.Attempts < 0 {
		errs = append(errs, fmt.Sprintf("selection.attempts: must be positive, got %d", c.Selection.Attempts))
	}
	if c.Selection.Delay < 0 {
		errs = append(errs, fmt.Sprintf("selection.delay: must not be negative, got %s", c.Selection.Delay))
	}

	if c.Library.DefaultSort != "" && !slices.Contains(provider.SortModes, provider.SortMode(c.Library.DefaultSort)) {
		errs = append(errs, fmt.Sprintf("library.default_sort: unknown sort mode %q", c.Library.DefaultSort))
	}

	if c.Cache.DetailsTTL < 0 || c.Cache.ClientTTL < 0 {
		errs = append(errs, "cache: ttl must not be negative")
	}

	if t := c.Providers.TMDB; t != nil && t.Enabled {
		if t.APIKey == "" {
			errs = append(errs, "providers.tmdb.api_key: required when tmdb is enabled")
		}
		if t.SeasonConcurrency < 0 {
			errs = append(errs, fmt.Sprintf("providers.tmdb.season_concurrency: must be positive, got %d", t.SeasonConcurrency))
		}
	}

	if t := c.Providers.TVDB; t != nil && t.Enabled && t.APIKey == "" {
		errs = append(errs, "providers.tvdb.api_key: required when tvdb is enabled")
	}

	enabled := c.EnabledProviders()
	if len(enabled) == 0 {
		errs = append(errs, "providers: at least one content provider must be enabled")
	}
	if c.Selection.Provider != "" && !slices.Contains(enabled, c.Selection.Provider) {
		errs = append(errs, fmt.Sprintf("selection.provider: %q is not an enabled provider", c.Selection.Provider))
	}

	return errs
}
