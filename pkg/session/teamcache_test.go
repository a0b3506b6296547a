package session

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/observability"
)

func testLogger() *observability.Logger {
	return observability.NewLogger(observability.ErrorLevel, io.Discard)
}

func sampleSnapshot() TeamSnapshot {
	return TeamSnapshot{
		TeamID: "team-1",
		Leader: api.TeamMember{ID: "u-1", FullName: "Asha", Role: api.RoleLeader},
		Members: []api.TeamMember{
			{ID: "u-2", FullName: "Ben", Role: api.RoleMember},
			{ID: "u-3", FullName: "Chen", Role: api.RoleMember},
		},
		Theme: "FinTech",
	}
}

func TestTeamCacheReconcileAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cache := NewTeamCache(store, time.Hour, testLogger())

	require.NoError(t, cache.Reconcile(ctx, sampleSnapshot()))

	snap, ok := cache.Get(ctx, "team-1")
	assert.True(t, ok)
	assert.Equal(t, "Asha", snap.Leader.FullName)
	assert.Len(t, snap.Members, 2)
	assert.Equal(t, snapshotVersion, snap.Version)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestTeamCacheReconcileMirrorsLegacyKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cache := NewTeamCache(store, time.Hour, testLogger())

	require.NoError(t, cache.Reconcile(ctx, sampleSnapshot()))

	raw, ok := store.Get(ctx, KeyLeaderProfile)
	require.True(t, ok)
	var leader api.TeamMember
	require.NoError(t, json.Unmarshal([]byte(raw), &leader))
	assert.Equal(t, api.RoleLeader, leader.Role)

	raw, ok = store.Get(ctx, KeyCachedTeamMembers)
	require.True(t, ok)
	var members []api.TeamMember
	require.NoError(t, json.Unmarshal([]byte(raw), &members))
	assert.Len(t, members, 2)
}

func TestTeamCacheExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cache := NewTeamCache(store, time.Minute, testLogger())

	now := time.Now()
	cache.now = func() time.Time { return now }
	require.NoError(t, cache.Reconcile(ctx, sampleSnapshot()))

	cache.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, ok := cache.Get(ctx, "team-1")
	assert.False(t, ok)
}

func TestTeamCacheVersionMismatchIsMiss(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cache := NewTeamCache(store, time.Hour, testLogger())

	stale := sampleSnapshot()
	stale.Version = snapshotVersion + 1
	stale.FetchedAt = time.Now()
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	store.Set(ctx, teamCachePrefix+"team-1", string(data))

	_, ok := cache.Get(ctx, "team-1")
	assert.False(t, ok)
}

func TestTeamCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cache := NewTeamCache(store, time.Hour, testLogger())
	require.NoError(t, cache.Reconcile(ctx, sampleSnapshot()))

	cache.Invalidate(ctx, "team-1")

	_, ok := cache.Get(ctx, "team-1")
	assert.False(t, ok)
}

func TestTeamCacheJanitorStartStop(t *testing.T) {
	cache := NewTeamCache(NewMemoryStore(), time.Hour, testLogger())

	require.NoError(t, cache.StartJanitor(context.Background()))
	// Starting twice is a no-op.
	require.NoError(t, cache.StartJanitor(context.Background()))
	cache.StopJanitor()
}

func TestTeamCacheSweepRemovesExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cache := NewTeamCache(store, time.Minute, testLogger())

	now := time.Now()
	cache.now = func() time.Time { return now }
	require.NoError(t, cache.Reconcile(ctx, sampleSnapshot()))

	cache.now = func() time.Time { return now.Add(5 * time.Minute) }
	cache.sweep(ctx)

	_, ok := store.Get(ctx, teamCachePrefix+"team-1")
	assert.False(t, ok)
}
