package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the client platform
type Metrics struct {
	// API client metrics
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec

	// Permission resolver metrics
	PermissionPollsTotal *prometheus.CounterVec
	PermissionSetSize    prometheus.Gauge

	// Session cache metrics
	SessionCacheHitsTotal   *prometheus.CounterVec
	SessionCacheMissesTotal *prometheus.CounterVec

	// Team resolution metrics
	TeamResolutionsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		APIRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hackhub_api_requests_total",
				Help: "Total API requests by resource, method and status code",
			},
			[]string{"resource", "method", "status"},
		),
		APIRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hackhub_api_request_duration_seconds",
				Help:    "API request duration by resource and method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource", "method"},
		),
		PermissionPollsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hackhub_permission_polls_total",
				Help: "Permission poll ticks by outcome (success, error, skipped, changed)",
			},
			[]string{"outcome"},
		),
		PermissionSetSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hackhub_permission_set_size",
				Help: "Number of capability tokens in the current permission set",
			},
		),
		SessionCacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hackhub_session_cache_hits_total",
				Help: "Session cache hits by cache name",
			},
			[]string{"cache"},
		),
		SessionCacheMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hackhub_session_cache_misses_total",
				Help: "Session cache misses by cache name",
			},
			[]string{"cache"},
		),
		TeamResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hackhub_team_resolutions_total",
				Help: "Team data resolutions by source (session, api, snapshot, placeholder)",
			},
			[]string{"source"},
		),
	}

	if registry != nil {
		registry.MustRegister(
			m.APIRequestsTotal,
			m.APIRequestDuration,
			m.PermissionPollsTotal,
			m.PermissionSetSize,
			m.SessionCacheHitsTotal,
			m.SessionCacheMissesTotal,
			m.TeamResolutionsTotal,
		)
	}

	return m
}

// ObserveAPIRequest records one completed API request
func (m *Metrics) ObserveAPIRequest(resource, method, status string, duration time.Duration) {
	m.APIRequestsTotal.WithLabelValues(resource, method, status).Inc()
	m.APIRequestDuration.WithLabelValues(resource, method).Observe(duration.Seconds())
}

// RecordPermissionPoll records the outcome of one poll tick
func (m *Metrics) RecordPermissionPoll(outcome string) {
	m.PermissionPollsTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheHit records a session cache hit
func (m *Metrics) RecordCacheHit(cache string) {
	m.SessionCacheHitsTotal.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a session cache miss
func (m *Metrics) RecordCacheMiss(cache string) {
	m.SessionCacheMissesTotal.WithLabelValues(cache).Inc()
}

// RecordTeamResolution records which fallback-chain source satisfied a
// team-data resolution
func (m *Metrics) RecordTeamResolution(source string) {
	m.TeamResolutionsTotal.WithLabelValues(source).Inc()
}
