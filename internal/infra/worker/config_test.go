package worker

import (
	"log/slog"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v, want nil", err)
	}
	if cfg.Schedule != "@every 60m" {
		t.Errorf("Schedule = %q, want @every 60m", cfg.Schedule)
	}
	if cfg.CycleTimeout >= 60*time.Minute {
		t.Errorf("CycleTimeout = %v, must stay below the 60m schedule interval", cfg.CycleTimeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Config) {},
		},
		{
			name:   "standard cron expression",
			mutate: func(c *Config) { c.Schedule = "0 * * * *" },
		},
		{
			name:    "invalid cron expression",
			mutate:  func(c *Config) { c.Schedule = "not a schedule" },
			wantErr: true,
		},
		{
			name:    "invalid timezone",
			mutate:  func(c *Config) { c.Timezone = "Mars/Olympus" },
			wantErr: true,
		},
		{
			name:    "timeout too short",
			mutate:  func(c *Config) { c.CycleTimeout = time.Second },
			wantErr: true,
		},
		{
			name:    "privileged health port",
			mutate:  func(c *Config) { c.HealthPort = 80 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("COLLECT_SCHEDULE", "every hour please")
	t.Setenv("WORKER_TIMEZONE", "Mars/Olympus")
	t.Setenv("CYCLE_TIMEOUT", "10h")
	t.Setenv("WORKER_HEALTH_PORT", "80")

	cfg := LoadConfigFromEnv(slog.Default())

	defaults := DefaultConfig()
	if cfg.Schedule != defaults.Schedule {
		t.Errorf("Schedule = %q, want default %q", cfg.Schedule, defaults.Schedule)
	}
	if cfg.Timezone != defaults.Timezone {
		t.Errorf("Timezone = %q, want default %q", cfg.Timezone, defaults.Timezone)
	}
	if cfg.CycleTimeout != defaults.CycleTimeout {
		t.Errorf("CycleTimeout = %v, want default %v", cfg.CycleTimeout, defaults.CycleTimeout)
	}
	if cfg.HealthPort != defaults.HealthPort {
		t.Errorf("HealthPort = %d, want default %d", cfg.HealthPort, defaults.HealthPort)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid after fallback: %v", err)
	}
}

func TestLoadConfigFromEnv_ValidOverrides(t *testing.T) {
	t.Setenv("COLLECT_SCHEDULE", "@every 30m")
	t.Setenv("WORKER_TIMEZONE", "Asia/Seoul")
	t.Setenv("CYCLE_TIMEOUT", "20m")
	t.Setenv("WORKER_HEALTH_PORT", "9191")

	cfg := LoadConfigFromEnv(slog.Default())

	if cfg.Schedule != "@every 30m" {
		t.Errorf("Schedule = %q, want @every 30m", cfg.Schedule)
	}
	if cfg.Timezone != "Asia/Seoul" {
		t.Errorf("Timezone = %q, want Asia/Seoul", cfg.Timezone)
	}
	if cfg.CycleTimeout != 20*time.Minute {
		t.Errorf("CycleTimeout = %v, want 20m", cfg.CycleTimeout)
	}
	if cfg.HealthPort != 9191 {
		t.Errorf("HealthPort = %d, want 9191", cfg.HealthPort)
	}
}
