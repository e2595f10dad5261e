// Package worker holds the scheduling runtime around the collection cycle:
// configuration, cycle metrics, and the health endpoint.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"cryptonews-collector/pkg/config"
)

// Config controls the collector's scheduling runtime.
//
// Loading is fail-open: an invalid environment value logs a warning and falls
// back to the default, so a typo in deployment config degrades to known-good
// behavior instead of crashing the worker.
type Config struct {
	// Schedule is the cron expression driving collection cycles. Supports
	// standard 5-field expressions and @every descriptors.
	// Default: "@every 60m".
	Schedule string

	// Timezone is the IANA timezone for cron evaluation. Default: "UTC".
	Timezone string

	// CycleTimeout bounds one collection cycle. A cycle that exceeds it is
	// cancelled; it must stay below the schedule interval so cycles cannot
	// pile up behind a stuck one. Default: 45 minutes.
	CycleTimeout time.Duration

	// HealthPort serves the health and metrics endpoints. Default: 9091.
	HealthPort int
}

// DefaultConfig returns the production defaults: a collection cycle every 60
// minutes in UTC with a 45-minute timeout.
func DefaultConfig() Config {
	return Config{
		Schedule:     "@every 60m",
		Timezone:     "UTC",
		CycleTimeout: 45 * time.Minute,
		HealthPort:   9091,
	}
}

// cronParser accepts both standard expressions and @every descriptors.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Validate checks every field and aggregates the failures.
func (c *Config) Validate() error {
	var errs []error

	if _, err := cronParser.Parse(c.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("schedule %q: %w", c.Schedule, err))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone %q: %w", c.Timezone, err))
	}
	if c.CycleTimeout < time.Minute || c.CycleTimeout > 4*time.Hour {
		errs = append(errs, fmt.Errorf("cycle timeout %v outside 1m-4h", c.CycleTimeout))
	}
	if c.HealthPort < 1024 || c.HealthPort > 65535 {
		errs = append(errs, fmt.Errorf("health port %d outside 1024-65535", c.HealthPort))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv builds the worker configuration from the environment,
// falling back per field to the default on invalid values.
//
// Environment variables:
//   - COLLECT_SCHEDULE: cron expression or @every descriptor
//   - WORKER_TIMEZONE: IANA timezone name
//   - CYCLE_TIMEOUT: Go duration, 1m to 4h
//   - WORKER_HEALTH_PORT: 1024-65535
func LoadConfigFromEnv(logger *slog.Logger) *Config {
	defaults := DefaultConfig()
	cfg := defaults

	cfg.Schedule = config.GetEnvString("COLLECT_SCHEDULE", defaults.Schedule)
	if _, err := cronParser.Parse(cfg.Schedule); err != nil {
		logger.Warn("invalid COLLECT_SCHEDULE, using default",
			slog.String("value", cfg.Schedule),
			slog.String("default", defaults.Schedule),
			slog.Any("error", err))
		cfg.Schedule = defaults.Schedule
	}

	cfg.Timezone = config.GetEnvString("WORKER_TIMEZONE", defaults.Timezone)
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		logger.Warn("invalid WORKER_TIMEZONE, using default",
			slog.String("value", cfg.Timezone),
			slog.String("default", defaults.Timezone),
			slog.Any("error", err))
		cfg.Timezone = defaults.Timezone
	}

	cfg.CycleTimeout = config.GetEnvDuration("CYCLE_TIMEOUT", defaults.CycleTimeout)
	if cfg.CycleTimeout < time.Minute || cfg.CycleTimeout > 4*time.Hour {
		logger.Warn("CYCLE_TIMEOUT outside 1m-4h, using default",
			slog.Duration("value", cfg.CycleTimeout),
			slog.Duration("default", defaults.CycleTimeout))
		cfg.CycleTimeout = defaults.CycleTimeout
	}

	cfg.HealthPort = config.GetEnvInt("WORKER_HEALTH_PORT", defaults.HealthPort)
	if cfg.HealthPort < 1024 || cfg.HealthPort > 65535 {
		logger.Warn("WORKER_HEALTH_PORT outside 1024-65535, using default",
			slog.Int("value", cfg.HealthPort),
			slog.Int("default", defaults.HealthPort))
		cfg.HealthPort = defaults.HealthPort
	}

	return &cfg
}
