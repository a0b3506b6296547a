// Package session provides the session-scoped cache shared by every view:
// the bearer token, the authenticated identity, and team snapshots.
//
// # Overview
//
// Store is the key/value contract with two backends:
//
//   - MemoryStore: process-scoped, the default (per-tab semantics)
//   - RedisStore: persistent across restarts, namespaced per session ID
//
// Snapshots are eventually consistent by design: refreshed on demand or
// after a successful mutation, never guaranteed fresh. A failure to read is
// always a miss, never an error, so views fall through to their next source.
//
// # Team cache
//
// TeamCache consolidates the four legacy team keys (leaderProfile,
// apiTeamMembers, cachedTeamLeader, cachedTeamMembers) into one versioned
// entry per team ID with an explicit TTL. Reconcile is the single write
// point and keeps the legacy keys mirrored for older readers.
package session
