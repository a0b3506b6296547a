package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devpulse/hackhub/pkg/observability"
)

// Config holds all application configuration
type Config struct {
	// API client configuration
	API APIConfig `yaml:"api"`

	// Session store configuration
	Session SessionConfig `yaml:"session"`

	// Observability configuration
	Observability ObservabilityConfig `yaml:"observability"`
}

// APIConfig holds HTTP client configuration
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// PollInterval is how often open dashboards re-fetch permissions
	PollInterval time.Duration `yaml:"poll_interval"`
}

// SessionConfig holds session store configuration
type SessionConfig struct {
	// Backend selects the store implementation: "memory" or "redis"
	Backend string `yaml:"backend"`

	// Redis config (used when Backend is "redis")
	RedisURL      string `yaml:"redis_url"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	// SessionID namespaces persisted keys so parallel sessions don't collide
	SessionID string `yaml:"session_id"`

	// TeamCacheTTL bounds how stale a cached team snapshot may be
	TeamCacheTTL time.Duration `yaml:"team_cache_ttl"`
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	// Logging
	LogLevel observability.LogLevel `yaml:"-"`

	// LogLevelName is the yaml/env spelling of LogLevel
	LogLevelName string `yaml:"log_level"`

	// Metrics
	MetricsEnabled bool `yaml:"metrics_enabled"`

	// OpenTelemetry
	OTelEnabled        bool   `yaml:"otel_enabled"`
	OTelEndpoint       string `yaml:"otel_endpoint"`
	OTelServiceName    string `yaml:"otel_service_name"`
	OTelServiceVersion string `yaml:"otel_service_version"`
	OTelInsecure       bool   `yaml:"otel_insecure"` // Use insecure gRPC connection
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		API:           loadAPIConfig(),
		Session:       loadSessionConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigFile loads configuration from a YAML file, then applies
// environment overrides on top
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{
		API:           loadAPIConfig(),
		Session:       loadSessionConfig(),
		Observability: loadObservabilityConfig(),
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	applyEnvOverrides(cfg)
	if cfg.Observability.LogLevelName != "" {
		cfg.Observability.LogLevel = parseLogLevel(cfg.Observability.LogLevelName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadAPIConfig loads API client configuration from environment
func loadAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:        getEnv("HACKHUB_API_URL", "http://localhost:8080/api/v1"),
		RequestTimeout: getEnvDuration("HACKHUB_REQUEST_TIMEOUT", 15*time.Second),
		PollInterval:   getEnvDuration("HACKHUB_POLL_INTERVAL", 10*time.Second),
	}
}

// loadSessionConfig loads session store configuration from environment
func loadSessionConfig() SessionConfig {
	return SessionConfig{
		Backend:       getEnv("HACKHUB_SESSION_BACKEND", "memory"),
		RedisURL:      getEnv("HACKHUB_REDIS_URL", "localhost:6379"),
		RedisPassword: getEnv("HACKHUB_REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("HACKHUB_REDIS_DB", 0),
		SessionID:     getEnv("HACKHUB_SESSION_ID", "default"),
		TeamCacheTTL:  getEnvDuration("HACKHUB_TEAM_CACHE_TTL", 5*time.Minute),
	}
}

// loadObservabilityConfig loads observability configuration from environment
func loadObservabilityConfig() ObservabilityConfig {
	levelName := getEnv("HACKHUB_LOG_LEVEL", "info")
	return ObservabilityConfig{
		LogLevel:           parseLogLevel(levelName),
		LogLevelName:       levelName,
		MetricsEnabled:     getEnvBool("HACKHUB_METRICS_ENABLED", true),
		OTelEnabled:        getEnvBool("HACKHUB_OTEL_ENABLED", false),
		OTelEndpoint:       getEnv("HACKHUB_OTEL_ENDPOINT", "localhost:4317"),
		OTelServiceName:    getEnv("HACKHUB_OTEL_SERVICE_NAME", "hackhub"),
		OTelServiceVersion: getEnv("HACKHUB_OTEL_SERVICE_VERSION", "1.0.0"),
		OTelInsecure:       getEnvBool("HACKHUB_OTEL_INSECURE", true),
	}
}

// applyEnvOverrides re-applies any explicitly set environment variables so
// they win over file values
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HACKHUB_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("HACKHUB_SESSION_BACKEND"); v != "" {
		cfg.Session.Backend = v
	}
	if v := os.Getenv("HACKHUB_REDIS_URL"); v != "" {
		cfg.Session.RedisURL = v
	}
	if v := os.Getenv("HACKHUB_SESSION_ID"); v != "" {
		cfg.Session.SessionID = v
	}
	if v := os.Getenv("HACKHUB_LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevelName = v
	}
	if v := getEnvDuration("HACKHUB_POLL_INTERVAL", 0); v > 0 {
		cfg.API.PollInterval = v
	}
	if v := getEnvDuration("HACKHUB_TEAM_CACHE_TTL", 0); v > 0 {
		cfg.Session.TeamCacheTTL = v
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate API config
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.API.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}

	// Validate session config based on backend
	switch c.Session.Backend {
	case "memory":
	case "redis":
		if c.Session.RedisURL == "" {
			return fmt.Errorf("redis URL is required for redis session backend")
		}
		if c.Session.SessionID == "" {
			return fmt.Errorf("session ID is required for redis session backend")
		}
	default:
		return fmt.Errorf("invalid session backend: %s (must be memory or redis)", c.Session.Backend)
	}
	if c.Session.TeamCacheTTL < 0 {
		return fmt.Errorf("team cache TTL must not be negative")
	}

	// Validate OpenTelemetry config
	if c.Observability.OTelEnabled {
		if c.Observability.OTelEndpoint == "" {
			return fmt.Errorf("OpenTelemetry endpoint is required when OTel is enabled")
		}
		if c.Observability.OTelServiceName == "" {
			return fmt.Errorf("OpenTelemetry service name is required when OTel is enabled")
		}
	}

	return nil
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) observability.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return observability.DebugLevel
	case "info":
		return observability.InfoLevel
	case "warn", "warning":
		return observability.WarnLevel
	case "error":
		return observability.ErrorLevel
	default:
		return observability.InfoLevel
	}
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
