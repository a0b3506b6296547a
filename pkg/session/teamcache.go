package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/observability"
)

// snapshotVersion is bumped whenever the TeamSnapshot layout changes; cached
// entries from an older layout are treated as misses.
const snapshotVersion = 1

const teamCachePrefix = "teamCache:"

// TeamSnapshot is the consolidated team cache entry: one versioned record per
// team ID replacing the four independently written legacy keys.
type TeamSnapshot struct {
	Version          int              `json:"version"`
	TeamID           string           `json:"team_id"`
	Leader           api.TeamMember   `json:"leader"`
	Members          []api.TeamMember `json:"members"`
	Theme            string           `json:"theme,omitempty"`
	ProblemStatement string           `json:"problem_statement,omitempty"`
	FetchedAt        time.Time        `json:"fetched_at"`
}

// TeamCache stores team snapshots in the session store with an explicit TTL.
// Reconcile is the single write point: it writes the consolidated entry and
// keeps the legacy keys in sync so older readers see the same data.
type TeamCache struct {
	store  Store
	ttl    time.Duration
	logger *observability.Logger
	now    func() time.Time

	mu      sync.Mutex
	known   map[string]struct{}
	sweeper *cron.Cron
}

// NewTeamCache creates a team cache with the given TTL.
func NewTeamCache(store Store, ttl time.Duration, logger *observability.Logger) *TeamCache {
	return &TeamCache{
		store:  store,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
		known:  make(map[string]struct{}),
	}
}

// Reconcile writes the snapshot for its team. It stamps the version and fetch
// time, stores the consolidated entry and mirrors leader/members into the
// legacy keys read by the fallback chain.
func (c *TeamCache) Reconcile(ctx context.Context, snap TeamSnapshot) error {
	snap.Version = snapshotVersion
	snap.FetchedAt = c.now()

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	c.store.Set(ctx, teamCachePrefix+snap.TeamID, string(data))

	if leader, err := json.Marshal(snap.Leader); err == nil {
		c.store.Set(ctx, KeyLeaderProfile, string(leader))
		c.store.Set(ctx, KeyCachedTeamLeader, string(leader))
	}
	if members, err := json.Marshal(snap.Members); err == nil {
		c.store.Set(ctx, KeyAPITeamMembers, string(members))
		c.store.Set(ctx, KeyCachedTeamMembers, string(members))
	}

	c.mu.Lock()
	c.known[snap.TeamID] = struct{}{}
	c.mu.Unlock()
	return nil
}

// Get returns the cached snapshot for the team. Entries with a stale version
// or past their TTL are misses.
func (c *TeamCache) Get(ctx context.Context, teamID string) (TeamSnapshot, bool) {
	raw, ok := c.store.Get(ctx, teamCachePrefix+teamID)
	if !ok {
		return TeamSnapshot{}, false
	}
	var snap TeamSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return TeamSnapshot{}, false
	}
	if snap.Version != snapshotVersion {
		return TeamSnapshot{}, false
	}
	if c.ttl > 0 && c.now().Sub(snap.FetchedAt) > c.ttl {
		return TeamSnapshot{}, false
	}
	return snap, true
}

// Invalidate drops the cached snapshot for the team.
func (c *TeamCache) Invalidate(ctx context.Context, teamID string) {
	c.store.Delete(ctx, teamCachePrefix+teamID)
	c.mu.Lock()
	delete(c.known, teamID)
	c.mu.Unlock()
}

// StartJanitor begins periodically removing expired entries written by this
// cache. It returns immediately; StopJanitor tears the schedule down.
func (c *TeamCache) StartJanitor(ctx context.Context) error {
	if c.ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sweeper != nil {
		return nil
	}
	c.sweeper = cron.New()
	spec := "@every " + c.ttl.String()
	if _, err := c.sweeper.AddFunc(spec, func() { c.sweep(ctx) }); err != nil {
		c.sweeper = nil
		return err
	}
	c.sweeper.Start()
	return nil
}

// StopJanitor stops the sweep schedule.
func (c *TeamCache) StopJanitor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sweeper != nil {
		c.sweeper.Stop()
		c.sweeper = nil
	}
}

// sweep drops every known entry whose TTL has elapsed.
func (c *TeamCache) sweep(ctx context.Context) {
	c.mu.Lock()
	ids := make([]string, 0, len(c.known))
	for id := range c.known {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	for _, id := range ids {
		if _, ok := c.Get(ctx, id); !ok {
			c.logger.WithField("team_id", id).Debug("evicting expired team snapshot")
			c.Invalidate(ctx, id)
		}
	}
}
