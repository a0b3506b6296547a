package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/devpulse/hackhub/pkg/api"
)

// User is the hackathonUser session payload. The ProblemStatements JSON key
// keeps its historical capitalization so stored sessions remain readable by
// the web client.
type User struct {
	Email             string                 `json:"email"`
	User              api.Identity           `json:"user"`
	Team              *api.Team              `json:"team,omitempty"`
	Theme             string                 `json:"theme,omitempty"`
	ProblemStatements []api.ProblemStatement `json:"ProblemStatements,omitempty"`
	LoginTime         time.Time              `json:"loginTime"`
}

// Token returns the stored bearer token, or empty when not logged in.
func Token(ctx context.Context, store Store) string {
	token, _ := store.Get(ctx, KeyAuthToken)
	return token
}

// SetToken stores the bearer token for subsequent requests.
func SetToken(ctx context.Context, store Store, token string) {
	store.Set(ctx, KeyAuthToken, token)
}

// SaveUser persists the hackathonUser payload.
func SaveUser(ctx context.Context, store Store, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	store.Set(ctx, KeyHackathonUser, string(data))
	return nil
}

// LoadUser reads the hackathonUser payload; ok is false when absent or
// unreadable.
func LoadUser(ctx context.Context, store Store) (User, bool) {
	raw, ok := store.Get(ctx, KeyHackathonUser)
	if !ok {
		return User{}, false
	}
	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return User{}, false
	}
	return user, true
}

// SaveAdminUser persists the adminUser identity.
func SaveAdminUser(ctx context.Context, store Store, identity api.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	store.Set(ctx, KeyAdminUser, string(data))
	return nil
}

// LoadAdminUser reads the adminUser identity.
func LoadAdminUser(ctx context.Context, store Store) (api.Identity, bool) {
	raw, ok := store.Get(ctx, KeyAdminUser)
	if !ok {
		return api.Identity{}, false
	}
	var identity api.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return api.Identity{}, false
	}
	return identity, true
}

// ClearAuth removes the token, identities and every cached team snapshot.
// A 401 from any endpoint means the session is invalid everywhere, so the
// whole cache goes, not just the failing key.
func ClearAuth(ctx context.Context, store Store) {
	store.Delete(ctx,
		KeyAuthToken,
		KeyHackathonUser,
		KeyAdminUser,
		KeyLeaderProfile,
		KeyAPITeamMembers,
		KeyCachedTeamLeader,
		KeyCachedTeamMembers,
	)
}
