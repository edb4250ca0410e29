// Package config provides functionality for loading and creating the
// application configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"prodreport/local-app/internal/model"
)

// DefaultPath is the config file location used when none is given.
const DefaultPath = "./data/config.json"

// Load reads the configuration from the JSON file at path. If the file
// doesn't exist, a file with the default settings is created first.
func Load(path string) (*model.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("data_dir", "./data")
	v.SetDefault("storage_driver", "sqlite")
	v.SetDefault("storage_file", "prodreport.db")
	v.SetDefault("log_folder", "./logs")
	v.SetDefault("command_log", "commands.log")
	v.SetDefault("error_log", "errors.log")
	v.SetDefault("info_log", "info.log")
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "basevac2025")
	v.SetDefault("inactivity_timeout_minutes", 30)
	v.SetDefault("session_cap_minutes", 120)
	v.SetDefault("export_dir", ".")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	cfg := &model.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}
