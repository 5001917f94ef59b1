package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Nomics  NomicsConfig  `mapstructure:"nomics"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// NomicsConfig holds Nomics API connection details
type NomicsConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	// Timeout of zero leaves the HTTP transport default in place
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// OutputConfig controls how responses are printed
type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
