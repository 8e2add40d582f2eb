// internal/config/write_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "couchtv", "config.toml")

	err := WriteDefault(path, false)
	require.NoError(t, err, "WriteDefault failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")

	assert.Contains(t, string(content), "[search]")
	assert.Contains(t, string(content), "[providers.tmdb]")
	assert.Contains(t, string(content), "${TMDB_API_KEY}")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine"), 0o644))

	err := WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrExists)

	content, _ := os.ReadFile(path)
	assert.Equal(t, "# mine", string(content))

	require.NoError(t, WriteDefault(path, true))
	content, _ = os.ReadFile(path)
	assert.Equal(t, DefaultConfig(), string(content))
}

func TestDefaultConfig_Loads(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "k")
	t.Setenv("COUCHTV_DATA", "/var/lib/couchtv")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/couchtv/couchtv.db", cfg.Database.Path)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, "tmdb", cfg.Selection.Provider)
	require.NotNil(t, cfg.Providers.TMDB)
	assert.Equal(t, "k", cfg.Providers.TMDB.APIKey)
	require.NotNil(t, cfg.Providers.TVDB)
	assert.False(t, cfg.Providers.TVDB.Enabled)
}

func TestConfig_Write(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Path: "/srv/couchtv.db"},
		Search:   SearchConfig{MaxConcurrency: 12},
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, cfg.Write(path), "Write failed")

	loaded, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/couchtv.db", loaded.Database.Path)
	assert.Equal(t, 12, loaded.Search.MaxConcurrency)
}
