package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsRegisters(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	metrics.ObserveAPIRequest("theme", "GET", "200", 25*time.Millisecond)

	count := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("theme", "GET", "200"))
	assert.Equal(t, float64(1), count)
}

func TestPermissionPollOutcomes(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())

	metrics.RecordPermissionPoll("success")
	metrics.RecordPermissionPoll("success")
	metrics.RecordPermissionPoll("error")

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.PermissionPollsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PermissionPollsTotal.WithLabelValues("error")))
}

func TestCacheCounters(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())

	metrics.RecordCacheHit("team")
	metrics.RecordCacheMiss("team")
	metrics.RecordCacheMiss("team")

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.SessionCacheHitsTotal.WithLabelValues("team")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.SessionCacheMissesTotal.WithLabelValues("team")))
}

func TestTeamResolutionCounter(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())

	metrics.RecordTeamResolution("session")
	metrics.RecordTeamResolution("placeholder")

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.TeamResolutionsTotal.WithLabelValues("session")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.TeamResolutionsTotal.WithLabelValues("placeholder")))
}

func TestNewMetricsNilRegistry(t *testing.T) {
	metrics := NewMetrics(nil)
	assert.NotNil(t, metrics)
	metrics.RecordPermissionPoll("skipped")
}
