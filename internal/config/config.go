// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	customValidation "github.com/allisson/datamask/internal/validation"
)

// DefaultKeyPath is the key store location used when neither --key_path nor KEY_PATH is set.
const DefaultKeyPath = "secret.key"

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// KeyPath is the default key store location for tokenization.
	KeyPath string
	// CipherAlgorithm is the AEAD algorithm used for new tokens ("aes-gcm" or "chacha20-poly1305").
	CipherAlgorithm string
	// KMSKeyURI optionally wraps the key at rest with a KMS keeper (e.g., "base64key://...").
	KMSKeyURI string

	// MaskCharacter is the single character used to mask sensitive values.
	MaskCharacter string
	// FailureMarker replaces cells whose transform failed.
	FailureMarker string
	// CSVDelimiter is the single character separating fields in input and output datasets.
	CSVDelimiter string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPushgatewayURL is the Prometheus Pushgateway that receives metrics after a run.
	MetricsPushgatewayURL string
	// MetricsJobName is the Pushgateway job label.
	MetricsJobName string
	// MetricsTextfilePath is a file that receives metrics in the Prometheus text format after a run.
	MetricsTextfilePath string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Keys and tokenization
		KeyPath:         env.GetString("KEY_PATH", DefaultKeyPath),
		CipherAlgorithm: env.GetString("CIPHER_ALGORITHM", "aes-gcm"),
		KMSKeyURI:       env.GetString("KMS_KEY_URI", ""),

		// Masking and dataset handling
		MaskCharacter: env.GetString("MASK_CHARACTER", "*"),
		FailureMarker: env.GetString("FAILURE_MARKER", "<transform-failed>"),
		CSVDelimiter:  env.GetString("CSV_DELIMITER", ","),

		// Metrics
		MetricsEnabled:        env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace:      env.GetString("METRICS_NAMESPACE", "datamask"),
		MetricsPushgatewayURL: env.GetString("METRICS_PUSHGATEWAY_URL", ""),
		MetricsJobName:        env.GetString("METRICS_JOB_NAME", "datamask"),
		MetricsTextfilePath:   env.GetString("METRICS_TEXTFILE_PATH", ""),
	}
}

// Validate checks the configuration values that cannot be defaulted safely.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.In("debug", "info", "warn", "error").Error("log level must be debug, info, warn or error"),
		),
		validation.Field(&c.KeyPath,
			validation.Required.Error("key path is required"),
		),
		validation.Field(&c.CipherAlgorithm,
			validation.Required.Error("cipher algorithm is required"),
			validation.In("aes-gcm", "chacha20-poly1305").
				Error("cipher algorithm must be aes-gcm or chacha20-poly1305"),
		),
		validation.Field(&c.MaskCharacter,
			validation.Required.Error("mask character is required"),
			customValidation.PrintableCharacter.Error("mask character must be a single printable character"),
		),
		validation.Field(&c.CSVDelimiter,
			validation.Required.Error("csv delimiter is required"),
			customValidation.CSVDelimiter.Error("csv delimiter must be a single character other than a quote or line break"),
		),
		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, validation.Required.Error("metrics namespace is required")),
		),
	)
	return customValidation.WrapValidationError(err)
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSVDelimiter)
	return r
}

// MaskRune returns the mask character as a rune.
func (c *Config) MaskRune() rune {
	r, _ := utf8.DecodeRuneInString(c.MaskCharacter)
	return r
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
