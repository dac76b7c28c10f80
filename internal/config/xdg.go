package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user config and data directories.
const AppName = "letterdist"

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// DefaultDBPath returns the default path for the run history database.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, AppName, "history.db")
}
