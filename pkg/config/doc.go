// Package config provides application configuration management from
// environment variables and an optional YAML file.
//
// # Overview
//
// This package loads and validates configuration with sensible defaults for
// all settings. Environment variables always win over file values. Watch
// re-loads the file on change so a running dashboard can pick up a new API
// endpoint or poll interval without restarting.
//
// # Configuration Structure
//
// API client settings:
//
//	HACKHUB_API_URL="http://localhost:8080/api/v1"
//	HACKHUB_REQUEST_TIMEOUT="15s"
//	HACKHUB_POLL_INTERVAL="10s"
//
// Session settings:
//
//	HACKHUB_SESSION_BACKEND="memory"  # memory, redis
//	HACKHUB_REDIS_URL="localhost:6379"
//	HACKHUB_SESSION_ID="default"
//	HACKHUB_TEAM_CACHE_TTL="5m"
//
// Observability settings:
//
//	HACKHUB_LOG_LEVEL="info"  # debug, info, warn, error
//	HACKHUB_METRICS_ENABLED="true"
//	HACKHUB_OTEL_ENABLED="false"
//	HACKHUB_OTEL_ENDPOINT="otel-collector:4317"
//
// # Usage Example
//
// Load configuration:
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("API: %s\n", cfg.API.BaseURL)
//	fmt.Printf("Session backend: %s\n", cfg.Session.Backend)
//	fmt.Printf("Log level: %s\n", cfg.Observability.LogLevel)
//
// # Related Packages
//
//   - pkg/session: Uses session configuration
//   - pkg/observability: Uses observability configuration
package config
