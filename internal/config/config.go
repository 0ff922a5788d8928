// SPDX-License-Identifier: MPL-2.0

// Package config loads sdkscan's configuration and resolves the SDK root
// directory to inspect.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"sdkscan/pkg/platform"
)

const (
	// AppName is the application name.
	AppName = "sdkscan"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"

	// EnvPrefix namespaces the environment variables viper binds
	// (SDKSCAN_SDK_ROOT and friends).
	EnvPrefix = "SDKSCAN"
)

// configFileOverride is set via the --config flag.
var configFileOverride string

type (
	// Config is the loaded application configuration.
	Config struct {
		// SDKRoot pins the SDK installation to inspect. When empty, the root
		// is resolved from the environment and the per-OS default locations.
		SDKRoot string `mapstructure:"sdk_root"`
		// ExtraRoots are additional candidate directories tried after SDKRoot.
		ExtraRoots []string `mapstructure:"extra_roots"`
		// UI holds output-related settings.
		UI UIConfig `mapstructure:"ui"`
		// Export holds catalog serialization settings.
		Export ExportConfig `mapstructure:"export"`
	}

	// UIConfig holds output-related settings.
	UIConfig struct {
		// Verbose enables per-entry skip diagnostics on stderr.
		Verbose bool `mapstructure:"verbose"`
	}

	// ExportConfig holds catalog serialization settings.
	ExportConfig struct {
		// Format is the default export format: json or toml.
		Format string `mapstructure:"format"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{Format: "json"},
	}
}

// SetConfigFilePathOverride points Load at an explicit config file.
// Used by the --config flag; an empty value restores the default lookup.
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}

// ConfigDir returns the sdkscan configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration from the config file (when one exists),
// environment variables and defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("sdk_root", defaults.SDKRoot)
	v.SetDefault("extra_roots", defaults.ExtraRoots)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("export.format", defaults.Export.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFileOverride != "" {
		v.SetConfigFile(configFileOverride)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFileOverride, err)
		}
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ConfigFilePath returns the path of the config file Load would read.
func ConfigFilePath() (string, error) {
	if configFileOverride != "" {
		return configFileOverride, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}
