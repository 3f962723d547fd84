// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the process settings from defaults, a tally.yaml file,
// TALLY_* environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/tally/internal/i18n"
)

// Names of the terminal drivers.
const (
	DriverTea   = "tea"
	DriverTcell = "tcell"
	DriverRaw   = "raw"
)

// Drivers lists the accepted values of the driver setting.
var Drivers = []string{DriverTea, DriverTcell, DriverRaw}

// Config holds the process settings. Counter semantics are not configurable.
type Config struct {
	Driver   string    `mapstructure:"driver"`
	Language string    `mapstructure:"language"`
	Verbose  bool      `mapstructure:"verbose"`
	Log      LogConfig `mapstructure:"log"`
}

// LogConfig selects where log output goes.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Defaults are the values used when nothing else sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"driver":   DriverTea,
		"language": "en",
		"verbose":  false,
		"log.file": "",
	}
}

// Validate rejects settings no screen can run with.
func (c Config) Validate() error {
	if !slices.Contains(Drivers, c.Driver) {
		return fmt.Errorf("unknown driver %q (expected one of %s)", c.Driver, strings.Join(Drivers, ", "))
	}
	if !slices.Contains(i18n.Supported(), baseLanguage(c.Language)) {
		return fmt.Errorf("unsupported language %q (expected one of %s)", c.Language, strings.Join(i18n.Supported(), ", "))
	}
	return nil
}

// baseLanguage strips the region from tags like "de-AT" or "de_AT".
func baseLanguage(tag string) string {
	base, _, _ := strings.Cut(strings.ReplaceAll(tag, "_", "-"), "-")
	return strings.ToLower(base)
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Tally")
		default:
			configDir = "/etc/tally"
		}
	} else {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(userDir, "tally")
	}

	return filepath.Join(configDir, "tally.yaml"), nil
}

// LoadConfig resolves T from defaults, config file, environment and the flags
// of cmd. A missing config file is not an error; an explicit path that cannot
// be read is.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("tally")
	v.SetConfigType("yaml")

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || explicitPath != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("tally")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	return c, nil
}

// Load is LoadConfig for Config with the package defaults, plus validation.
func Load(cmd *cobra.Command, explicitPath *string) (Config, error) {
	c, err := LoadConfig[Config](cmd, Defaults(), explicitPath)
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}
