// Package config provides typed environment variable helpers with defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file in the working directory when
// one exists. Missing files are fine; real environments set variables
// directly.
func LoadDotEnv() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env file")
	}
}

// GetEnvString returns the value of the environment variable or the default
// when unset or empty.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvInt returns the integer value of the environment variable. Invalid
// values log a warning and fall back to the default.
func GetEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return n
}

// GetEnvBool returns the boolean value of the environment variable. Accepts
// the forms strconv.ParseBool accepts; invalid values log a warning and fall
// back to the default.
func GetEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
	return b
}

// GetEnvDuration returns the duration value of the environment variable in
// Go duration syntax ("45m", "90s"). Invalid values log a warning and fall
// back to the default.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Duration("default", defaultValue))
		return defaultValue
	}
	return d
}
