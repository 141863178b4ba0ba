// Package config loads the engine configuration from the environment and
// resolves the application paths. Configuration is an explicit struct
// handed to the components that need it; there is no process-wide mutable
// state.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the environment variables, e.g. CLEANTAB_DATA_DIR.
const envPrefix = "CLEANTAB"

// Config is the complete engine configuration.
type Config struct {
	// DataDir is where data files live by default.
	DataDir string `envconfig:"DATA_DIR" default:"data" validate:"required"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// LogFormat selects the slog handler: text or json.
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`

	// CurrencySymbol prefixes money-formatted values.
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"$" validate:"required"`

	// NumericSampleSize bounds the numeric applicability check.
	NumericSampleSize int `envconfig:"NUMERIC_SAMPLE_SIZE" default:"10" validate:"min=1"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Logger builds the slog logger described by the config, writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
