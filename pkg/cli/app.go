package cli

import (
	"context"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/client"
	"github.com/devpulse/hackhub/pkg/config"
	"github.com/devpulse/hackhub/pkg/events"
	"github.com/devpulse/hackhub/pkg/observability"
	"github.com/devpulse/hackhub/pkg/session"
)

// app wires the shared pieces every command needs: config, logger, session
// store, event bus and the API client. The memory session backend lasts one
// invocation; the redis backend carries a login across invocations.
type app struct {
	cfg      *config.Config
	logger   *observability.Logger
	store    session.Store
	bus      *events.Bus
	metrics  *observability.Metrics
	registry *prometheus.Registry
	client   *client.Client
	teams    *session.TeamCache
	display  *session.DisplayCache

	closers []func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}
	return newAppWithConfig(ctx, cfg)
}

func loadAppConfig() (*config.Config, error) {
	if path := os.Getenv("HACKHUB_CONFIG"); path != "" {
		return config.LoadConfigFile(path)
	}
	return config.LoadConfig()
}

func newAppWithConfig(ctx context.Context, cfg *config.Config) (*app, error) {
	logger := observability.NewLogger(cfg.Observability.LogLevel, os.Stderr)

	a := &app{
		cfg:    cfg,
		logger: logger,
		bus:    events.NewBus(),
	}

	display, err := session.NewDisplayCache(16)
	if err != nil {
		return nil, err
	}
	a.display = display

	if cfg.Observability.MetricsEnabled {
		a.registry = prometheus.NewRegistry()
		a.metrics = observability.NewMetrics(a.registry)
	}

	providers, err := observability.InitOTel(ctx, observability.OTelConfig{
		Enabled:        cfg.Observability.OTelEnabled,
		Endpoint:       cfg.Observability.OTelEndpoint,
		ServiceName:    cfg.Observability.OTelServiceName,
		ServiceVersion: cfg.Observability.OTelServiceVersion,
		Insecure:       cfg.Observability.OTelInsecure,
	}, logger)
	if err != nil {
		return nil, err
	}
	if providers != nil {
		a.closers = append(a.closers, func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := observability.ShutdownOTel(shutdownCtx, providers, logger); err != nil {
				logger.WithError(err).Warn("telemetry shutdown incomplete")
			}
		})
	}

	switch cfg.Session.Backend {
	case "redis":
		store, err := session.NewRedisStore(ctx, session.RedisOptions{
			Addr:      cfg.Session.RedisURL,
			Password:  cfg.Session.RedisPassword,
			DB:        cfg.Session.RedisDB,
			SessionID: cfg.Session.SessionID,
		}, logger)
		if err != nil {
			return nil, err
		}
		a.store = store
		a.closers = append(a.closers, func() { store.Close() })
	default:
		a.store = session.NewMemoryStore()
	}

	a.teams = session.NewTeamCache(a.store, cfg.Session.TeamCacheTTL, logger)
	if err := a.teams.StartJanitor(ctx); err != nil {
		return nil, err
	}
	a.closers = append(a.closers, a.teams.StopJanitor)

	a.client = client.New(client.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.RequestTimeout,
	}, a.store, a.bus, logger, a.metrics)

	return a, nil
}

// Close releases backend connections.
func (a *app) Close() {
	for _, closeFn := range a.closers {
		closeFn()
	}
}

// loadIdentity returns whichever identity the session holds, preferring the
// admin one.
func loadIdentity(ctx context.Context, a *app) (api.Identity, bool) {
	if identity, ok := session.LoadAdminUser(ctx, a.store); ok {
		return identity, true
	}
	if user, ok := session.LoadUser(ctx, a.store); ok {
		return user.User, true
	}
	return api.Identity{}, false
}
