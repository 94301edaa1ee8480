package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		EventService: EventServiceConfig{URL: "http://localhost:3000/api", Timeout: 10 * time.Second},
		Calendar:     CalendarConfig{Timezone: "UTC", WeekStart: "sunday", UpcomingLimit: 5},
		Credential:   CredentialConfig{Store: "memory"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "monday week start", mutate: func(c *Config) { c.Calendar.WeekStart = "monday" }},
		{name: "missing url", mutate: func(c *Config) { c.EventService.URL = "" }, wantErr: "event_service.url"},
		{name: "zero timeout", mutate: func(c *Config) { c.EventService.Timeout = 0 }, wantErr: "timeout"},
		{name: "bad timezone", mutate: func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" }, wantErr: "calendar.timezone"},
		{name: "bad week start", mutate: func(c *Config) { c.Calendar.WeekStart = "friday" }, wantErr: "week_start"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Credential.Store = "sqlite" }, wantErr: "sqlite_path"},
		{name: "unknown store", mutate: func(c *Config) { c.Credential.Store = "redis" }, wantErr: "credential.store"},
		{name: "zero upcoming limit", mutate: func(c *Config) { c.Calendar.UpcomingLimit = 0 }, wantErr: "upcoming_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestWeekStartDay(t *testing.T) {
	if got := (CalendarConfig{WeekStart: "monday"}).WeekStartDay(); got != time.Monday {
		t.Errorf("monday -> %v", got)
	}
	if got := (CalendarConfig{WeekStart: "sunday"}).WeekStartDay(); got != time.Sunday {
		t.Errorf("sunday -> %v", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.EventService.Timeout != 10*time.Second {
		t.Errorf("default timeout = %v, want 10s", cfg.EventService.Timeout)
	}
	if cfg.Calendar.UpcomingLimit != 5 || cfg.Calendar.UpcomingHorizonDays != 7 {
		t.Errorf("unexpected upcoming defaults: %+v", cfg.Calendar)
	}
	if cfg.Credential.Store != "memory" {
		t.Errorf("default store = %q", cfg.Credential.Store)
	}
}
