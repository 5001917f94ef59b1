package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/s0up4200/nomics/nomics"
)

const placeholderAPIKey = "your-api-key-here"

// flagBindings maps config keys to the CLI flags that may override them
var flagBindings = map[string]string{
	"nomics.api_key":  "api-key",
	"nomics.base_url": "base-url",
	"nomics.timeout":  "timeout",
	"output.pretty":   "pretty",
	"logging.level":   "log-level",
}

// envBindings maps config keys to environment variables
var envBindings = map[string]string{
	"nomics.api_key":  "NOMICS_API_KEY",
	"nomics.base_url": "NOMICS_BASE_URL",
	"nomics.timeout":  "NOMICS_TIMEOUT",
	"logging.level":   "NOMICS_LOG_LEVEL",
}

// Load loads the configuration from file, environment and flags.
// A missing config file is fine when no path was given explicitly.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".nomics"))
		}

		// Check /etc
		v.AddConfigPath("/etc/nomics/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("error binding --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Nomics defaults
	v.SetDefault("nomics.base_url", nomics.DefaultBaseURL)
	v.SetDefault("nomics.timeout", 0)

	// Output defaults
	v.SetDefault("output.pretty", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Nomics.APIKey == "" || cfg.Nomics.APIKey == placeholderAPIKey {
		return fmt.Errorf("nomics.api_key must be set to a valid API key")
	}

	if cfg.Nomics.Timeout < 0 {
		return fmt.Errorf("nomics.timeout must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
