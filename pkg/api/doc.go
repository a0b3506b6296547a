// Package api defines the wire types exchanged with the HackHub REST API.
//
// These are plain JSON structs with no behavior; the API owns all
// authoritative state and clients only hold display copies of it.
//
// # Related Packages
//
//   - pkg/client: resource modules that issue the HTTP requests
//   - pkg/session: session-scoped caching of these types
package api
