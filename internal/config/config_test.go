package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/datamask/internal/errors"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "secret.key", cfg.KeyPath)
				assert.Equal(t, "aes-gcm", cfg.CipherAlgorithm)
				assert.Equal(t, "", cfg.KMSKeyURI)
				assert.Equal(t, "*", cfg.MaskCharacter)
				assert.Equal(t, "<transform-failed>", cfg.FailureMarker)
				assert.Equal(t, ",", cfg.CSVDelimiter)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "datamask", cfg.MetricsNamespace)
				assert.Equal(t, "", cfg.MetricsPushgatewayURL)
				assert.Equal(t, "datamask", cfg.MetricsJobName)
				assert.Equal(t, "", cfg.MetricsTextfilePath)
			},
		},
		{
			name: "load custom key configuration",
			envVars: map[string]string{
				"KEY_PATH":         "/var/lib/datamask/prod.key",
				"CIPHER_ALGORITHM": "chacha20-poly1305",
				"KMS_KEY_URI":      "hashivault://datamask",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/var/lib/datamask/prod.key", cfg.KeyPath)
				assert.Equal(t, "chacha20-poly1305", cfg.CipherAlgorithm)
				assert.Equal(t, "hashivault://datamask", cfg.KMSKeyURI)
			},
		},
		{
			name: "load custom masking configuration",
			envVars: map[string]string{
				"MASK_CHARACTER": "#",
				"FAILURE_MARKER": "ERROR",
				"CSV_DELIMITER":  ";",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "#", cfg.MaskCharacter)
				assert.Equal(t, '#', cfg.MaskRune())
				assert.Equal(t, "ERROR", cfg.FailureMarker)
				assert.Equal(t, ';', cfg.Delimiter())
			},
		},
		{
			name: "load custom metrics configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":         "true",
				"METRICS_NAMESPACE":       "masking",
				"METRICS_PUSHGATEWAY_URL": "http://localhost:9091",
				"METRICS_JOB_NAME":        "nightly",
				"METRICS_TEXTFILE_PATH":   "/var/lib/node_exporter/datamask.prom",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "masking", cfg.MetricsNamespace)
				assert.Equal(t, "http://localhost:9091", cfg.MetricsPushgatewayURL)
				assert.Equal(t, "nightly", cfg.MetricsJobName)
				assert.Equal(t, "/var/lib/node_exporter/datamask.prom", cfg.MetricsTextfilePath)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			// Load configuration
			cfg := Load()

			// Validate
			tt.validate(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			LogLevel:         "info",
			KeyPath:          "secret.key",
			CipherAlgorithm:  "aes-gcm",
			MaskCharacter:    "*",
			FailureMarker:    "<transform-failed>",
			CSVDelimiter:     ",",
			MetricsNamespace: "datamask",
		}
	}

	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		expectError string
	}{
		{
			name:   "valid configuration",
			mutate: func(cfg *Config) {},
		},
		{
			name:   "valid chacha20 configuration",
			mutate: func(cfg *Config) { cfg.CipherAlgorithm = "chacha20-poly1305" },
		},
		{
			name:   "multibyte mask character",
			mutate: func(cfg *Config) { cfg.MaskCharacter = "█" },
		},
		{
			name:        "unsupported algorithm",
			mutate:      func(cfg *Config) { cfg.CipherAlgorithm = "fernet" },
			expectError: "cipher algorithm must be aes-gcm or chacha20-poly1305",
		},
		{
			name:        "empty key path",
			mutate:      func(cfg *Config) { cfg.KeyPath = "" },
			expectError: "key path is required",
		},
		{
			name:        "mask character too long",
			mutate:      func(cfg *Config) { cfg.MaskCharacter = "**" },
			expectError: "mask character must be a single printable character",
		},
		{
			name:        "space mask character",
			mutate:      func(cfg *Config) { cfg.MaskCharacter = " " },
			expectError: "mask character must be a single printable character",
		},
		{
			name:   "tab delimiter",
			mutate: func(cfg *Config) { cfg.CSVDelimiter = "\t" },
		},
		{
			name:        "quote delimiter",
			mutate:      func(cfg *Config) { cfg.CSVDelimiter = `"` },
			expectError: "csv delimiter must be a single character other than a quote or line break",
		},
		{
			name:        "delimiter too long",
			mutate:      func(cfg *Config) { cfg.CSVDelimiter = "::" },
			expectError: "csv delimiter must be a single character other than a quote or line break",
		},
		{
			name:        "unknown log level",
			mutate:      func(cfg *Config) { cfg.LogLevel = "trace" },
			expectError: "log level must be debug, info, warn or error",
		},
		{
			name: "metrics enabled without namespace",
			mutate: func(cfg *Config) {
				cfg.MetricsEnabled = true
				cfg.MetricsNamespace = ""
			},
			expectError: "metrics namespace is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}
