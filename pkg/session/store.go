package session

import (
	"context"
	"sync"
)

// Session storage keys. The names mirror what the web client persisted so
// payloads stay interchangeable across clients.
const (
	KeyAuthToken         = "authToken"
	KeyHackathonUser     = "hackathonUser"
	KeyAdminUser         = "adminUser"
	KeyLeaderProfile     = "leaderProfile"
	KeyAPITeamMembers    = "apiTeamMembers"
	KeyCachedTeamLeader  = "cachedTeamLeader"
	KeyCachedTeamMembers = "cachedTeamMembers"
	KeySelectedTheme     = "selectedTheme"
)

// Store is a session-scoped key/value store. Writes are last-write-wins and
// reads always observe the latest stored value; there is no cross-store
// coordination. Implementations treat backend failures as cache misses so
// callers fall through to their next data source instead of failing hard.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a value under the key, replacing any previous value.
	Set(ctx context.Context, key, value string)

	// Delete removes the given keys; absent keys are ignored.
	Delete(ctx context.Context, keys ...string)

	// Clear removes every key in the session.
	Clear(ctx context.Context)
}

// MemoryStore is the default Store: a process-scoped map, the Go analogue of
// per-tab browser session storage.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value and whether the key was present.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set stores a value under the key.
func (s *MemoryStore) Set(_ context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Delete removes the given keys.
func (s *MemoryStore) Delete(_ context.Context, keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
}

// Clear removes every key in the session.
func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
}
