// Package client implements the HTTP client for the HackHub API: a single
// configured wrapper plus flat per-resource request modules.
//
// # Overview
//
// The wrapper owns the base URL, the default timeout, bearer-token injection
// from the session store, and centralized handling of the two status codes
// that have global meaning:
//
//   - 401: the session is invalid everywhere. The session cache is cleared
//     and a SessionExpired event is published.
//   - 403: the capability is missing but the session is valid. An
//     AuthorizationDenied event is published; the error still propagates.
//
// All other failures propagate to the caller unchanged: no retry, no
// backoff, terminal per request.
//
// # Resource modules
//
// Resource methods (SendOTP, ListThemes, DeclareResults, ...) are
// deliberately dumb: each issues exactly one request and decodes the raw
// response. They exist to centralize endpoint paths and verbs, not to shape
// responses; callers interpret the data. Admin operations take a Variant
// selecting the /admin or /s/admin route family.
//
// # Related Packages
//
//   - pkg/session: where the bearer token and identity live
//   - pkg/events: receives the 401/403 signals
//   - pkg/permissions: polls GetPermissions through this client
package client
