package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[providers.tmdb]
enabled = true
api_key = "abc"
`

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
file = "/tmp/couchtv.log"

[search]
debounce = "150ms"
max_concurrency = 3

[selection]
provider = "tmdb"
attempts = 2
delay = "1s"

[library]
default_sort = "rating_high"

[providers.tmdb]
enabled = true
api_key = "abc"
base_url = "http://localhost:9999"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/couchtv.log", cfg.Log.File)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 3, cfg.Search.MaxConcurrency)
	assert.Equal(t, 2, cfg.Selection.Attempts)
	assert.Equal(t, time.Second, cfg.Selection.Delay)
	assert.Equal(t, "rating_high", cfg.Library.DefaultSort)
	assert.Equal(t, "http://localhost:9999", cfg.Providers.TMDB.BaseURL)
	assert.Equal(t, []string{"tmdb"}, cfg.EnabledProviders())
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv("COUCHTV_DATA", "")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, "/xdg/data/couchtv/couchtv.db", cfg.Database.Path)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 8, cfg.Search.MaxConcurrency)
	assert.Equal(t, 5, cfg.Selection.Attempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Selection.Delay)
	assert.Equal(t, "alphabetical_az", cfg.Library.DefaultSort)
	assert.Equal(t, 6*time.Hour, cfg.Cache.DetailsTTL)
	assert.Equal(t, "https://api.themoviedb.org", cfg.Providers.TMDB.BaseURL)
	assert.Equal(t, 4, cfg.Providers.TMDB.SeasonConcurrency)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[providers.tmdb]
enabled = true
api_key = "${COUCHTV_TEST_MISSING_TMDB_KEY}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"COUCHTV_TEST_MISSING_TMDB_KEY"}, cfgErr.Missing)
	assert.Equal(t, path, cfgErr.Path)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "chatty"

[providers.tmdb]
enabled = true
`)

	_, err := Load(path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Errors, 2)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "providers.tmdb.api_key")
}

func TestLoad_EnvVarDefault(t *testing.T) {
	t.Setenv("COUCHTV_TEST_DB_DIR", "")
	path := writeConfig(t, minimalConfig+`
[database]
path = "${COUCHTV_TEST_DB_DIR:-/srv}/tv.db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/tv.db", cfg.Database.Path)
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[log\nlevel = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutValidation(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "chatty"

[providers.tmdb]
api_key = "${COUCHTV_TEST_NOT_SET_EITHER}"
`)

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "chatty", cfg.Log.Level)
	assert.Equal(t, "${COUCHTV_TEST_NOT_SET_EITHER}", cfg.Providers.TMDB.APIKey)
}
