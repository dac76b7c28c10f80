// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Report  ReportConfig  `toml:"report"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

// ReportConfig maps report-related settings.
type ReportConfig struct {
	Input     *string `toml:"input"`
	Column    *string `toml:"column"`
	Output    *string `toml:"output"`
	Format    *string `toml:"format"`
	Delimiter *string `toml:"delimiter"`
	MaxCount  *int    `toml:"max-count"`
}

// HistoryConfig maps run history settings.
type HistoryConfig struct {
	Record *bool   `toml:"record"`
	DB     *string `toml:"db"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
