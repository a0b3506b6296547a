package permissions

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/devpulse/hackhub/pkg/observability"
)

// DefaultPollInterval is how often the resolver re-fetches the permission
// set while a dashboard is open.
const DefaultPollInterval = 10 * time.Second

// Fetcher fetches the capability tokens granted to an admin account.
// *client.Client satisfies it.
type Fetcher interface {
	GetPermissions(ctx context.Context, email string) ([]string, error)
}

// Resolver keeps an admin's permission set current: one fetch on start, then
// a fixed-interval poll until its context is cancelled. Concurrent refreshes
// (a poll tick racing a manual refresh) are coalesced into a single request.
//
// The resolver fails closed: any fetch error empties the effective set, so
// no capability is granted until a subsequent fetch succeeds.
type Resolver struct {
	fetcher  Fetcher
	email    string
	interval time.Duration
	logger   *observability.Logger
	metrics  *observability.Metrics

	group singleflight.Group

	mu        sync.RWMutex
	current   Set
	listeners []func(Set)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithInterval overrides the poll interval.
func WithInterval(interval time.Duration) Option {
	return func(r *Resolver) { r.interval = interval }
}

// WithMetrics records poll outcomes and set size.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(r *Resolver) { r.metrics = metrics }
}

// NewResolver creates a resolver for the given admin email.
func NewResolver(fetcher Fetcher, email string, logger *observability.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		fetcher:  fetcher,
		email:    email,
		interval: DefaultPollInterval,
		logger:   logger,
		current:  NewSet(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Current returns a copy of the effective permission set.
func (r *Resolver) Current() Set {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Clone()
}

// OnChange registers fn to be called with the new set whenever the effective
// set actually changes. Polls that return an identical set do not fire.
func (r *Resolver) OnChange(fn func(Set)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Run fetches once immediately, then polls until ctx is cancelled. The
// interval tick is fixed: no backoff, no jitter.
func (r *Resolver) Run(ctx context.Context) {
	r.Refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Refresh(ctx)
		}
	}
}

// Refresh fetches the permission set now. Callers arriving while a fetch is
// already in flight share its result instead of issuing another request.
func (r *Resolver) Refresh(ctx context.Context) {
	_, _, shared := r.group.Do("refresh", func() (interface{}, error) {
		r.fetch(ctx)
		return nil, nil
	})
	if shared {
		r.record("deduped")
	}
}

func (r *Resolver) fetch(ctx context.Context) {
	tokens, err := r.fetcher.GetPermissions(ctx, r.email)
	if err != nil {
		// Fail closed: no definitive answer means nothing is allowed.
		r.logger.WithError(err).WithField("email", r.email).Warn("permission fetch failed, clearing capability set")
		r.record("error")
		r.update(NewSet())
		return
	}
	r.record("success")
	r.update(NewSet(tokens...))
}

// update swaps in the new set and notifies listeners only on actual change.
func (r *Resolver) update(next Set) {
	r.mu.Lock()
	if r.current.Equal(next) {
		r.mu.Unlock()
		return
	}
	r.current = next
	listeners := make([]func(Set), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.PermissionSetSize.Set(float64(len(next)))
	}
	r.record("changed")
	r.logger.WithField("permissions", next.Tokens()).Info("permission set changed")
	for _, fn := range listeners {
		fn(next.Clone())
	}
}

func (r *Resolver) record(outcome string) {
	if r.metrics != nil {
		r.metrics.RecordPermissionPoll(outcome)
	}
}
