// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Dataset settings.
	CSVPath          string  // Path of the CSV file to load at startup.
	NumericThreshold float64 // Fraction of parseable values for a column to classify numeric.
	DefaultTopN      int     // Result cap when a tool's n/top_n argument is omitted.
	MaxCSVBytes      int64   // Maximum CSV file size accepted at load.

	// OTEL settings.
	OTELEndpoint string
	OTELInsecure bool
	ServiceName  string

	// Operational settings.
	LogLevel string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		CSVPath:          envStr("SOROBAN_CSV_PATH", ""),
		NumericThreshold: envFloat("SOROBAN_NUMERIC_THRESHOLD", 0.8),
		DefaultTopN:      envInt("SOROBAN_DEFAULT_TOP_N", 10),
		MaxCSVBytes:      int64(envInt("SOROBAN_MAX_CSV_BYTES", 32*1024*1024)), // 32 MB default
		OTELEndpoint:     envStr("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTELInsecure:     envBool("OTEL_EXPORTER_OTLP_INSECURE", false),
		ServiceName:      envStr("OTEL_SERVICE_NAME", "soroban"),
		LogLevel:         envStr("SOROBAN_LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that configuration values are within range.
func (c Config) Validate() error {
	if c.NumericThreshold <= 0 || c.NumericThreshold > 1 {
		return fmt.Errorf("config: SOROBAN_NUMERIC_THRESHOLD must be in (0, 1], got %v", c.NumericThreshold)
	}
	if c.DefaultTopN <= 0 {
		return fmt.Errorf("config: SOROBAN_DEFAULT_TOP_N must be positive")
	}
	if c.MaxCSVBytes <= 0 {
		return fmt.Errorf("config: SOROBAN_MAX_CSV_BYTES must be positive")
	}
	return nil
}

// ParseLevel maps a level name to its slog level. Unknown names map to
// Info, consistent with the silent-fallback policy of the env helpers.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogLevel returns the configured log level as a slog level.
func (c Config) SlogLevel() slog.Level {
	return ParseLevel(c.LogLevel)
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
