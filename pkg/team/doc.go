// Package team resolves a team's leader and members through a strict
// fallback chain: session cache, then the current-user endpoint, then a
// caller-supplied snapshot.
//
// # Overview
//
// The resolver returns a tri-state Resolution (Loaded, Empty or Errored)
// instead of fabricating data on failure. Views that need something to
// render call Resolution.OrPlaceholder, which synthesizes a leader whose ID
// is tagged with a "fallback-" prefix so it can never pass for a real
// identifier. A session-cache hit with a genuine Leader role short-circuits
// the chain without any network call.
package team
