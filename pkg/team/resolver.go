package team

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/observability"
	"github.com/devpulse/hackhub/pkg/session"
)

// State is the outcome of a team-data resolution. The resolver never
// fabricates data itself; a view that insists on a leader object calls
// Resolution.OrPlaceholder and gets one that is unmistakably synthetic.
type State int

const (
	// Loaded means a real leader was resolved from one of the chain's sources.
	Loaded State = iota
	// Empty means every source was consulted and none had team data.
	Empty
	// Errored means the chain reached the network and the network failed.
	Errored
)

// Resolution sources, also used as metric labels.
const (
	SourceSession     = "session"
	SourceAPI         = "api"
	SourceSnapshot    = "snapshot"
	SourcePlaceholder = "placeholder"
)

// placeholderPrefix tags synthetic leader IDs so they can never be mistaken
// for a real identifier.
const placeholderPrefix = "fallback-"

// Resolution is the tri-state result of resolving a team's leader and
// members.
type Resolution struct {
	State   State
	Leader  api.TeamMember
	Members []api.TeamMember
	Source  string
	Err     error
}

// OrPlaceholder returns the resolved leader and members, synthesizing a
// tagged placeholder leader when the resolution is Empty or Errored. The
// placeholder's ID always carries the "fallback-" prefix.
func (r Resolution) OrPlaceholder() (api.TeamMember, []api.TeamMember) {
	if r.State == Loaded {
		return r.Leader, r.Members
	}
	return api.TeamMember{
		ID:       placeholderPrefix + uuid.NewString(),
		FullName: "Team Leader",
		Role:     api.RoleLeader,
	}, r.Members
}

// UserFetcher fetches the authenticated user with embedded team data.
// *client.Client satisfies it.
type UserFetcher interface {
	CurrentUser(ctx context.Context) (*api.CurrentUserResponse, error)
}

// Resolver resolves "my team's leader and members" through a strict fallback
// chain: the session cache first, the current-user endpoint second, a
// caller-supplied snapshot last. The first source yielding a real leader
// wins; a session hit never touches the network.
type Resolver struct {
	store   session.Store
	cache   *session.TeamCache
	fetcher UserFetcher
	logger  *observability.Logger
	metrics *observability.Metrics
}

// NewResolver creates a team-data resolver.
func NewResolver(store session.Store, cache *session.TeamCache, fetcher UserFetcher, logger *observability.Logger, metrics *observability.Metrics) *Resolver {
	return &Resolver{
		store:   store,
		cache:   cache,
		fetcher: fetcher,
		logger:  logger,
		metrics: metrics,
	}
}

// Resolve walks the fallback chain. The fallback snapshot is optional team
// data the caller already holds, typically from a login response; it is
// consulted only after the session cache and the API have both come up
// short.
func (r *Resolver) Resolve(ctx context.Context, fallback *session.TeamSnapshot) Resolution {
	if leader, members, ok := r.fromSession(ctx); ok {
		r.record(SourceSession)
		return Resolution{State: Loaded, Leader: leader, Members: members, Source: SourceSession}
	}

	res, netErr := r.fromAPI(ctx)
	if netErr == nil && res.State == Loaded {
		r.record(SourceAPI)
		return res
	}

	if fallback != nil && isRealLeader(fallback.Leader) {
		if err := r.cache.Reconcile(ctx, *fallback); err != nil {
			r.logger.WithError(err).Warn("failed to cache fallback team snapshot")
		}
		r.record(SourceSnapshot)
		return Resolution{State: Loaded, Leader: fallback.Leader, Members: fallback.Members, Source: SourceSnapshot}
	}

	r.record(SourcePlaceholder)
	if netErr != nil {
		r.logger.WithError(netErr).Warn("team resolution failed at every source")
		return Resolution{State: Errored, Err: netErr}
	}
	return Resolution{State: Empty}
}

// fromSession parses the cached leader profile. It is accepted only when the
// cached role is exactly Leader and the ID carries no placeholder tag.
func (r *Resolver) fromSession(ctx context.Context) (api.TeamMember, []api.TeamMember, bool) {
	raw, ok := r.store.Get(ctx, session.KeyLeaderProfile)
	if !ok {
		r.miss()
		return api.TeamMember{}, nil, false
	}
	var leader api.TeamMember
	if err := json.Unmarshal([]byte(raw), &leader); err != nil || !isRealLeader(leader) {
		r.miss()
		return api.TeamMember{}, nil, false
	}
	r.hit()
	return leader, r.cachedMembers(ctx), true
}

func (r *Resolver) cachedMembers(ctx context.Context) []api.TeamMember {
	for _, key := range []string{session.KeyAPITeamMembers, session.KeyCachedTeamMembers} {
		raw, ok := r.store.Get(ctx, key)
		if !ok {
			continue
		}
		var members []api.TeamMember
		if err := json.Unmarshal([]byte(raw), &members); err == nil {
			return members
		}
	}
	return nil
}

// fromAPI fetches the current user and interprets the role-dependent team
// shape: a leader's own payload may omit the leader field, in which case the
// leader is derived from the identity itself.
func (r *Resolver) fromAPI(ctx context.Context) (Resolution, error) {
	resp, err := r.fetcher.CurrentUser(ctx)
	if err != nil {
		return Resolution{}, err
	}
	if resp.Team == nil {
		return Resolution{State: Empty}, nil
	}

	var leader api.TeamMember
	switch {
	case resp.Team.Leader != nil && isRealLeader(*resp.Team.Leader):
		leader = *resp.Team.Leader
	case resp.User.Role == api.RoleLeader:
		leader = api.TeamMember{
			ID:       resp.User.ID,
			FullName: resp.User.FullName,
			Email:    resp.User.Email,
			Role:     api.RoleLeader,
		}
	default:
		return Resolution{State: Empty}, nil
	}

	snap := session.TeamSnapshot{
		TeamID:           teamID(resp),
		Leader:           leader,
		Members:          resp.Team.Members,
		Theme:            resp.Team.Theme,
		ProblemStatement: resp.Team.ProblemStatement,
	}
	if err := r.cache.Reconcile(ctx, snap); err != nil {
		r.logger.WithError(err).WithField("team_id", snap.TeamID).Warn("failed to cache team snapshot")
	}
	return Resolution{State: Loaded, Leader: leader, Members: resp.Team.Members, Source: SourceAPI}, nil
}

func teamID(resp *api.CurrentUserResponse) string {
	if resp.Team != nil && resp.Team.ID != "" {
		return resp.Team.ID
	}
	return resp.User.TeamID
}

// isRealLeader rejects non-leader roles and synthetic placeholder markers.
func isRealLeader(member api.TeamMember) bool {
	return member.Role == api.RoleLeader && !strings.HasPrefix(member.ID, placeholderPrefix)
}

func (r *Resolver) record(source string) {
	if r.metrics != nil {
		r.metrics.RecordTeamResolution(source)
	}
}

func (r *Resolver) hit() {
	if r.metrics != nil {
		r.metrics.RecordCacheHit("leader_profile")
	}
}

func (r *Resolver) miss() {
	if r.metrics != nil {
		r.metrics.RecordCacheMiss("leader_profile")
	}
}
