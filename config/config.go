package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar portal
	EventService   EventServiceConfig
	Calendar       CalendarConfig
	Credential     CredentialConfig
	Session        SessionConfig
	RateLimit      RateLimitConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EventServiceConfig points at the upstream data service that owns worker
// appointments, time blocks and personal events.
type EventServiceConfig struct {
	URL       string
	Namespace string
	Token     string // Static bearer used by the CLI when no session exists
	Timeout   time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

type CalendarConfig struct {
	Timezone            string
	WeekStart           string // "sunday" or "monday"
	DateLayout          string
	UpcomingLimit       int
	UpcomingHorizonDays int
}

type CredentialConfig struct {
	Store         string // "memory" or "sqlite"
	SQLitePath    string
	TTL           time.Duration
	PurgeSchedule string // cron spec
}

type SessionConfig struct {
	Size         int
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type RateLimitConfig struct {
	PerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/kwikr/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/kwikr/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Event data service
	cfg.EventService.URL = viper.GetString("event_service.url")
	cfg.EventService.Namespace = viper.GetString("event_service.namespace")
	cfg.EventService.Token = viper.GetString("event_service.token")
	cfg.EventService.Timeout = viper.GetDuration("event_service.timeout")
	cfg.EventService.CacheTTL = viper.GetDuration("event_service.cache_ttl")
	cfg.EventService.CacheSize = viper.GetInt("event_service.cache_size")
	if serviceURL := viper.GetString("event_service_url"); serviceURL != "" {
		cfg.EventService.URL = serviceURL
	}
	if serviceToken := viper.GetString("event_service_token"); serviceToken != "" {
		cfg.EventService.Token = serviceToken
	}

	// Calendar display
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.WeekStart = strings.ToLower(viper.GetString("calendar.week_start"))
	cfg.Calendar.DateLayout = viper.GetString("calendar.date_layout")
	cfg.Calendar.UpcomingLimit = viper.GetInt("calendar.upcoming_limit")
	cfg.Calendar.UpcomingHorizonDays = viper.GetInt("calendar.upcoming_horizon_days")

	// Credentials & sessions
	cfg.Credential.Store = strings.ToLower(viper.GetString("credential.store"))
	cfg.Credential.SQLitePath = viper.GetString("credential.sqlite_path")
	cfg.Credential.TTL = viper.GetDuration("credential.ttl")
	cfg.Credential.PurgeSchedule = viper.GetString("credential.purge_schedule")

	cfg.Session.Size = viper.GetInt("session.size")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Optional Google Calendar personal events
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late at request time.
func (c *Config) Validate() error {
	if c.EventService.URL == "" {
		return fmt.Errorf("event_service.url is required")
	}
	if c.EventService.Timeout <= 0 {
		return fmt.Errorf("event_service.timeout must be positive")
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("calendar.timezone %q: %w", c.Calendar.Timezone, err)
	}
	switch c.Calendar.WeekStart {
	case "sunday", "monday":
	default:
		return fmt.Errorf("calendar.week_start must be sunday or monday, got %q", c.Calendar.WeekStart)
	}
	switch c.Credential.Store {
	case "memory":
	case "sqlite":
		if c.Credential.SQLitePath == "" {
			return fmt.Errorf("credential.sqlite_path is required for the sqlite store")
		}
	default:
		return fmt.Errorf("credential.store must be memory or sqlite, got %q", c.Credential.Store)
	}
	if c.Calendar.UpcomingLimit <= 0 {
		return fmt.Errorf("calendar.upcoming_limit must be positive")
	}
	return nil
}

// WeekStartDay converts the configured week start to a time.Weekday.
func (c CalendarConfig) WeekStartDay() time.Weekday {
	if c.WeekStart == "monday" {
		return time.Monday
	}
	return time.Sunday
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("event_service.url", "http://localhost:3000/api")
	viper.SetDefault("event_service.namespace", "worker")
	viper.SetDefault("event_service.timeout", "10s")
	viper.SetDefault("event_service.cache_ttl", "30s")
	viper.SetDefault("event_service.cache_size", 256)

	viper.SetDefault("calendar.timezone", "America/Toronto")
	viper.SetDefault("calendar.week_start", "sunday")
	viper.SetDefault("calendar.date_layout", "Jan 2, 2006")
	viper.SetDefault("calendar.upcoming_limit", 5)
	viper.SetDefault("calendar.upcoming_horizon_days", 7)

	viper.SetDefault("credential.store", "memory")
	viper.SetDefault("credential.sqlite_path", "data/credentials.db")
	viper.SetDefault("credential.ttl", "24h")
	viper.SetDefault("credential.purge_schedule", "@every 1h")

	viper.SetDefault("session.size", 1000)
	viper.SetDefault("session.ttl", "12h")
	viper.SetDefault("session.cookie_name", "kwikr_session")
	viper.SetDefault("session.cookie_secure", false)

	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
