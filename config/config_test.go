package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/nomics/nomics"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("file with defaults", func(t *testing.T) {
		path := writeConfig(t, "nomics:\n  api_key: file-key\n")

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.Nomics.APIKey)
		assert.Equal(t, nomics.DefaultBaseURL, cfg.Nomics.BaseURL)
		assert.Zero(t, cfg.Nomics.Timeout)
		assert.True(t, cfg.Output.Pretty)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
		assert.True(t, cfg.Logging.Color)
	})

	t.Run("file values", func(t *testing.T) {
		path := writeConfig(t, `nomics:
  api_key: file-key
  base_url: http://localhost:9000/v1/
  timeout: 15s
output:
  pretty: false
logging:
  level: debug
  format: json
  color: false
`)

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/v1/", cfg.Nomics.BaseURL)
		assert.Equal(t, 15*time.Second, cfg.Nomics.Timeout)
		assert.False(t, cfg.Output.Pretty)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "nomics:\n  api_key: file-key\n")
		t.Setenv("NOMICS_API_KEY", "env-key")
		t.Setenv("NOMICS_TIMEOUT", "5s")

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.Nomics.APIKey)
		assert.Equal(t, 5*time.Second, cfg.Nomics.Timeout)
	})

	t.Run("flags override environment", func(t *testing.T) {
		path := writeConfig(t, "nomics:\n  api_key: file-key\n")
		t.Setenv("NOMICS_API_KEY", "env-key")

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("api-key", "", "")
		flags.Bool("pretty", false, "")
		require.NoError(t, flags.Parse([]string{"--api-key", "flag-key"}))

		cfg, err := Load(path, flags)
		require.NoError(t, err)
		assert.Equal(t, "flag-key", cfg.Nomics.APIKey)
		// unchanged flag does not beat the default
		assert.True(t, cfg.Output.Pretty)
	})

	t.Run("explicit missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("no key anywhere", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: info\n")
		t.Setenv("NOMICS_API_KEY", "")

		_, err := Load(path, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nomics.api_key")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Nomics: NomicsConfig{
				APIKey:  "valid-api-key",
				BaseURL: nomics.DefaultBaseURL,
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "console",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.Nomics.APIKey = "" },
			wantErr: "nomics.api_key must be set to a valid API key",
		},
		{
			name:    "placeholder api key",
			mutate:  func(c *Config) { c.Nomics.APIKey = "your-api-key-here" },
			wantErr: "nomics.api_key must be set to a valid API key",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Nomics.Timeout = -time.Second },
			wantErr: "nomics.timeout must not be negative",
		},
		{
			name:    "invalid level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level: verbose",
		},
		{
			name:    "invalid format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
