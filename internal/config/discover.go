// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment overrides for file locations.
const (
	EnvConfig = "COUCHTV_CONFIG"
	EnvData   = "COUCHTV_DATA"
)

// xdgDir returns the couchtv directory under the XDG base named by env,
// or under ~/fallback when env is unset.
func xdgDir(env, fallback string) (string, bool) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, "couchtv"), true
}

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	dir, ok := xdgDir("XDG_CONFIG_HOME", ".config")
	if !ok {
		return "./config.toml"
	}
	return filepath.Join(dir, "config.toml")
}

// DataDir returns where the database and cached metadata live:
// $COUCHTV_DATA, then $XDG_DATA_HOME/couchtv, then ~/.local/share/couchtv.
func DataDir() string {
	if dir := os.Getenv(EnvData); dir != "" {
		return dir
	}
	dir, ok := xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	if !ok {
		return "./data"
	}
	return dir
}

// DefaultDatabasePath is the database location used when the config
// leaves database.path unset.
func DefaultDatabasePath() string {
	return filepath.Join(DataDir(), "couchtv.db")
}

// SearchPaths returns the candidate locations checked by Discover after
// the environment override.
func SearchPaths() []string {
	return []string{
		"./config.toml",
		DefaultPath(),
		"/etc/couchtv/config.toml",
	}
}

// Discover finds the config file. An explicit $COUCHTV_CONFIG must exist;
// otherwise the first existing entry of SearchPaths wins.
func Discover() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfig, p, err)
		}
		return p, nil
	}

	candidates := SearchPaths()
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("config not found, checked: %s", strings.Join(candidates, ", "))
}
