// Package observability provides structured logging, Prometheus metrics and
// OpenTelemetry setup for the client platform.
//
// # Logging
//
//	logger := observability.NewLogger(observability.InfoLevel, os.Stdout)
//	logger.WithField("resource", "theme").Info("request complete")
//
// # Metrics
//
//	registry := prometheus.NewRegistry()
//	metrics := observability.NewMetrics(registry)
//	metrics.ObserveAPIRequest("theme", "GET", "200", elapsed)
//
// # Tracing
//
// InitOTel wires OTLP gRPC exporters for traces and metrics; the HTTP client
// transport is instrumented separately via otelhttp in pkg/client.
package observability
