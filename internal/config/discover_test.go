package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	// Clear XDG var to test default
	t.Setenv("XDG_CONFIG_HOME", "")

	path := DefaultPath()
	assert.Contains(t, path, ".config/couchtv/config.toml")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	path := DefaultPath()
	assert.Equal(t, "/custom/config/couchtv/config.toml", path)
}

func TestDiscover_EnvOverride(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "custom.toml")
	err := os.WriteFile(cfgPath, []byte("[log]"), 0644)
	require.NoError(t, err, "failed to create test config")

	t.Setenv("COUCHTV_CONFIG", cfgPath)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_EnvOverride_NotFound(t *testing.T) {
	t.Setenv("COUCHTV_CONFIG", "/nonexistent/config.toml")

	_, err := Discover()
	require.Error(t, err, "expected error for missing COUCHTV_CONFIG")
	assert.Contains(t, err.Error(), "COUCHTV_CONFIG")
}

func TestDiscover_CurrentDir(t *testing.T) {
	// Save current dir
	origDir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")
	defer func() {
		err := os.Chdir(origDir)
		assert.NoError(t, err, "failed to restore working directory")
	}()

	t.Setenv("COUCHTV_CONFIG", "")

	// Create temp dir with config
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	err = os.WriteFile(cfgPath, []byte("[log]"), 0644)
	require.NoError(t, err, "failed to create test config")
	err = os.Chdir(tmp)
	require.NoError(t, err, "failed to change directory")

	path, err := Discover()
	require.NoError(t, err)
	assert.True(t, filepath.Base(path) == "config.toml", "expected config.toml, got %s", path)
}

func TestDiscover_NotFound(t *testing.T) {
	// Save current dir
	origDir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")
	defer func() {
		err := os.Chdir(origDir)
		assert.NoError(t, err, "failed to restore working directory")
	}()

	t.Setenv("COUCHTV_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")

	tmp := t.TempDir() // Empty temp dir
	err = os.Chdir(tmp)
	require.NoError(t, err, "failed to change directory")

	_, err = Discover()
	require.Error(t, err, "expected error when no config found")
	assert.Contains(t, err.Error(), "config not found")
}

func TestDataDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("COUCHTV_DATA", "/srv/couchtv")
		t.Setenv("XDG_DATA_HOME", "/xdg/data")
		assert.Equal(t, "/srv/couchtv", DataDir())
	})
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("COUCHTV_DATA", "")
		t.Setenv("XDG_DATA_HOME", "/xdg/data")
		assert.Equal(t, "/xdg/data/couchtv", DataDir())
		assert.Equal(t, "/xdg/data/couchtv/couchtv.db", DefaultDatabasePath())
	})
	t.Run("home fallback", func(t *testing.T) {
		t.Setenv("COUCHTV_DATA", "")
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", "/home/viewer")
		assert.Equal(t, "/home/viewer/.local/share/couchtv", DataDir())
	})
}

func TestDiscover_SkipsDirectory(t *testing.T) {
	t.Setenv("COUCHTV_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")

	tmp := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmp, "config.toml"), 0o755))
	t.Chdir(tmp)

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config not found")
}
