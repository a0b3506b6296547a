package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/hackhub/pkg/events"
	"github.com/devpulse/hackhub/pkg/observability"
	"github.com/devpulse/hackhub/pkg/session"
)

type fixture struct {
	client  *Client
	store   *session.MemoryStore
	bus     *events.Bus
	metrics *observability.Metrics
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewMemoryStore()
	bus := events.NewBus()
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	return &fixture{
		client:  New(Config{BaseURL: server.URL}, store, bus, logger, metrics),
		store:   store,
		bus:     bus,
		metrics: metrics,
	}
}

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	var gotAuth string
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	session.SetToken(context.Background(), f.store, "tok-123")

	_, err := f.client.ListThemes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerTokenWhenAbsent(t *testing.T) {
	var gotAuth string
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := f.client.ListThemes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedClearsSessionGlobally(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ctx := context.Background()
	session.SetToken(ctx, f.store, "tok-123")
	f.store.Set(ctx, session.KeyHackathonUser, "{}")
	f.store.Set(ctx, session.KeyLeaderProfile, "{}")

	var expired []events.SessionExpired
	sub := f.bus.SubscribeSessionExpired(func(e events.SessionExpired) { expired = append(expired, e) })
	defer sub.Close()

	_, err := f.client.ListThemes(ctx)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	_, ok := f.store.Get(ctx, session.KeyAuthToken)
	assert.False(t, ok)
	_, ok = f.store.Get(ctx, session.KeyHackathonUser)
	assert.False(t, ok)
	_, ok = f.store.Get(ctx, session.KeyLeaderProfile)
	assert.False(t, ok)
	require.Len(t, expired, 1)
	assert.Equal(t, "/theme", expired[0].Path)
}

func TestForbiddenNeverLogsOut(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	ctx := context.Background()
	session.SetToken(ctx, f.store, "tok-123")

	var denied []events.AuthorizationDenied
	sub := f.bus.SubscribeAuthorizationDenied(func(e events.AuthorizationDenied) { denied = append(denied, e) })
	defer sub.Close()

	_, err := f.client.ListThemes(ctx)
	assert.True(t, errors.Is(err, ErrForbidden))

	token, ok := f.store.Get(ctx, session.KeyAuthToken)
	assert.True(t, ok)
	assert.Equal(t, "tok-123", token)
	require.Len(t, denied, 1)
	assert.Equal(t, "/theme", denied[0].Path)
}

func TestForbiddenWithNoSubscriberStillErrors(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := f.client.ListThemes(context.Background())
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestValidationErrorCarriesMessage(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"theme name is required"}`))
	})

	_, err := f.client.ListThemes(context.Background())
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "theme name is required", apiErr.Message)
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"theme not found"}`))
	})

	_, err := f.client.GetTheme(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, IsValidation(err))
}

func TestRequestMetricsRecorded(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := f.client.ListThemes(context.Background())
	require.NoError(t, err)

	count := testutil.ToFloat64(f.metrics.APIRequestsTotal.WithLabelValues("theme", "GET", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRequestIDHeaderSet(t *testing.T) {
	var gotID string
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	})

	_, err := f.client.ListThemes(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotID)
}
