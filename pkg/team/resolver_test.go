package team

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/observability"
	"github.com/devpulse/hackhub/pkg/session"
)

type stubUserFetcher struct {
	resp  *api.CurrentUserResponse
	err   error
	calls int
}

func (s *stubUserFetcher) CurrentUser(ctx context.Context) (*api.CurrentUserResponse, error) {
	s.calls++
	return s.resp, s.err
}

type fixture struct {
	store    *session.MemoryStore
	cache    *session.TeamCache
	fetcher  *stubUserFetcher
	resolver *Resolver
}

func newFixture(t *testing.T, fetcher *stubUserFetcher) *fixture {
	t.Helper()
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	store := session.NewMemoryStore()
	cache := session.NewTeamCache(store, time.Hour, logger)
	return &fixture{
		store:    store,
		cache:    cache,
		fetcher:  fetcher,
		resolver: NewResolver(store, cache, fetcher, logger, nil),
	}
}

func seedLeaderProfile(t *testing.T, store session.Store, leader api.TeamMember) {
	t.Helper()
	data, err := json.Marshal(leader)
	require.NoError(t, err)
	store.Set(context.Background(), session.KeyLeaderProfile, string(data))
}

func TestSessionLeaderShortCircuitsNetwork(t *testing.T) {
	fetcher := &stubUserFetcher{err: errors.New("must not be called")}
	f := newFixture(t, fetcher)
	seedLeaderProfile(t, f.store, api.TeamMember{ID: "u-1", FullName: "X", Role: api.RoleLeader})

	res := f.resolver.Resolve(context.Background(), nil)

	assert.Equal(t, Loaded, res.State)
	assert.Equal(t, SourceSession, res.Source)
	assert.Equal(t, "u-1", res.Leader.ID)
	assert.Zero(t, fetcher.calls, "a cached leader must not trigger a fetch")
}

func TestSessionLeaderIncludesCachedMembers(t *testing.T) {
	f := newFixture(t, &stubUserFetcher{err: errors.New("down")})
	seedLeaderProfile(t, f.store, api.TeamMember{ID: "u-1", Role: api.RoleLeader})

	members, err := json.Marshal([]api.TeamMember{{ID: "u-2", Role: api.RoleMember}})
	require.NoError(t, err)
	f.store.Set(context.Background(), session.KeyAPITeamMembers, string(members))

	res := f.resolver.Resolve(context.Background(), nil)

	require.Equal(t, Loaded, res.State)
	require.Len(t, res.Members, 1)
	assert.Equal(t, "u-2", res.Members[0].ID)
}

func TestNonLeaderProfileIsRejected(t *testing.T) {
	fetcher := &stubUserFetcher{resp: &api.CurrentUserResponse{}}
	f := newFixture(t, fetcher)
	seedLeaderProfile(t, f.store, api.TeamMember{ID: "u-1", Role: api.RoleMember})

	res := f.resolver.Resolve(context.Background(), nil)

	assert.Equal(t, Empty, res.State)
	assert.Equal(t, 1, fetcher.calls, "a rejected profile must fall through to the API")
}

func TestPlaceholderProfileIsRejected(t *testing.T) {
	fetcher := &stubUserFetcher{resp: &api.CurrentUserResponse{}}
	f := newFixture(t, fetcher)
	seedLeaderProfile(t, f.store, api.TeamMember{ID: "fallback-abc", Role: api.RoleLeader})

	res := f.resolver.Resolve(context.Background(), nil)

	assert.NotEqual(t, Loaded, res.State)
	assert.Equal(t, 1, fetcher.calls)
}

func TestAPILeaderEmbeddedInTeam(t *testing.T) {
	fetcher := &stubUserFetcher{resp: &api.CurrentUserResponse{
		User: api.Identity{ID: "u-2", Role: api.RoleMember},
		Team: &api.Team{
			ID:      "team-1",
			Leader:  &api.TeamMember{ID: "u-1", FullName: "Lead", Role: api.RoleLeader},
			Members: []api.TeamMember{{ID: "u-2", Role: api.RoleMember}},
		},
	}}
	f := newFixture(t, fetcher)

	res := f.resolver.Resolve(context.Background(), nil)

	require.Equal(t, Loaded, res.State)
	assert.Equal(t, SourceAPI, res.Source)
	assert.Equal(t, "u-1", res.Leader.ID)
	assert.Len(t, res.Members, 1)
}

func TestAPILeaderDerivedFromCallerIdentity(t *testing.T) {
	fetcher := &stubUserFetcher{resp: &api.CurrentUserResponse{
		User: api.Identity{ID: "u-1", FullName: "Lead", Email: "lead@hackhub.dev", Role: api.RoleLeader, TeamID: "team-1"},
		Team: &api.Team{Members: []api.TeamMember{{ID: "u-2", Role: api.RoleMember}}},
	}}
	f := newFixture(t, fetcher)

	res := f.resolver.Resolve(context.Background(), nil)

	require.Equal(t, Loaded, res.State)
	assert.Equal(t, "u-1", res.Leader.ID)
	assert.Equal(t, api.RoleLeader, res.Leader.Role)
}

func TestAPIResolutionWritesBackToCache(t *testing.T) {
	fetcher := &stubUserFetcher{resp: &api.CurrentUserResponse{
		User: api.Identity{ID: "u-1", Role: api.RoleLeader, TeamID: "team-1"},
		Team: &api.Team{ID: "team-1", Members: []api.TeamMember{{ID: "u-2", Role: api.RoleMember}}},
	}}
	f := newFixture(t, fetcher)
	ctx := context.Background()

	res := f.resolver.Resolve(ctx, nil)
	require.Equal(t, Loaded, res.State)

	snap, ok := f.cache.Get(ctx, "team-1")
	require.True(t, ok)
	assert.Equal(t, "u-1", snap.Leader.ID)

	// Legacy keys are mirrored so the next resolution hits the session path.
	res = f.resolver.Resolve(ctx, nil)
	assert.Equal(t, SourceSession, res.Source)
	assert.Equal(t, 1, fetcher.calls)
}

func TestSnapshotFallbackAfterNetworkError(t *testing.T) {
	f := newFixture(t, &stubUserFetcher{err: errors.New("down")})
	snap := &session.TeamSnapshot{
		TeamID:  "team-1",
		Leader:  api.TeamMember{ID: "u-1", Role: api.RoleLeader},
		Members: []api.TeamMember{{ID: "u-2", Role: api.RoleMember}},
	}

	res := f.resolver.Resolve(context.Background(), snap)

	require.Equal(t, Loaded, res.State)
	assert.Equal(t, SourceSnapshot, res.Source)
	assert.Equal(t, "u-1", res.Leader.ID)
}

func TestNetworkErrorWithNoFallbackIsErrored(t *testing.T) {
	f := newFixture(t, &stubUserFetcher{err: errors.New("down")})

	res := f.resolver.Resolve(context.Background(), nil)

	assert.Equal(t, Errored, res.State)
	assert.Error(t, res.Err)
	assert.Empty(t, res.Leader.ID, "an errored resolution carries no fabricated leader")
}

func TestNoTeamAnywhereIsEmpty(t *testing.T) {
	f := newFixture(t, &stubUserFetcher{resp: &api.CurrentUserResponse{
		User: api.Identity{ID: "u-1", Role: api.RoleParticipant},
	}})

	res := f.resolver.Resolve(context.Background(), nil)

	assert.Equal(t, Empty, res.State)
}

func TestOrPlaceholderTagsSyntheticLeader(t *testing.T) {
	res := Resolution{State: Errored, Err: errors.New("down")}

	leader, _ := res.OrPlaceholder()

	assert.True(t, strings.HasPrefix(leader.ID, "fallback-"), "synthetic ID %q must be tagged", leader.ID)
	assert.Equal(t, api.RoleLeader, leader.Role)
}

func TestOrPlaceholderPassesThroughLoadedData(t *testing.T) {
	res := Resolution{
		State:   Loaded,
		Leader:  api.TeamMember{ID: "u-1", Role: api.RoleLeader},
		Members: []api.TeamMember{{ID: "u-2"}},
	}

	leader, members := res.OrPlaceholder()

	assert.Equal(t, "u-1", leader.ID)
	assert.Len(t, members, 1)
}

func TestPlaceholderNeverReentersSessionPath(t *testing.T) {
	fetcher := &stubUserFetcher{err: errors.New("down")}
	f := newFixture(t, fetcher)
	ctx := context.Background()

	leader, _ := f.resolver.Resolve(ctx, nil).OrPlaceholder()
	seedLeaderProfile(t, f.store, leader)

	res := f.resolver.Resolve(ctx, nil)

	assert.Equal(t, Errored, res.State, "a stored placeholder must not satisfy the session path")
	assert.Equal(t, 2, fetcher.calls)
}
