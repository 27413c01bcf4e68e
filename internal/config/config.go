// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the application configuration as loaded from defaults,
// config file, environment and flags.
type Config struct {
	Wordlists struct {
		Dir string `mapstructure:"dir" yaml:"dir"`
	} `mapstructure:"wordlists" yaml:"wordlists"`
	Verify struct {
		ProgressEvery int `mapstructure:"progress_every" yaml:"progress_every"`
	} `mapstructure:"verify" yaml:"verify"`
	// Lengths extends the built-in digest-length table. Keys are digest
	// character lengths, values are ordered algorithm names appended to
	// (or, for unknown lengths, forming) that length's candidate list.
	Lengths  map[int][]string `mapstructure:"lengths" yaml:"lengths,omitempty"`
	Language string           `mapstructure:"language" yaml:"language"`
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "PassFail")
		default: // Linux, macOS, etc.
			configDir = "/etc/passfail"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "passfail")
	}

	return filepath.Join(configDir, "passfail.yaml"), nil
}

// LoadConfig builds the layered configuration: defaults, then the config
// file (explicit --config path, user dir, system dir, cwd), then
// PASSFAIL_* environment variables, then command-line flags.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("passfail")
	v.SetConfigType("yaml")

	// 3. Add explicit config file path if provided via --config flag.
	// This has the highest precedence for file-based configuration.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for passfail.yaml in current dir

	// 5. Read in the primary config file. A missing file is not fatal,
	// but the not-found error is handed back to the caller once the
	// remaining layers are applied, so first runs still get defaults and
	// the caller can decide to persist them.
	var missing error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		missing = err
	}

	// 6. Read from environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("passfail")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. Bind command-line flags
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	// parse config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, missing
}

// WriteConfigFile persists the configuration to the user or system
// config path, creating the directory when necessary.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0644)
}
