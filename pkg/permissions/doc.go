// Package permissions defines capability tokens and the resolver that keeps
// an admin's permission set current while a dashboard is open.
//
// # Overview
//
// A Set of Capability tokens is the source of truth for every gating
// decision. The Resolver fetches the set on start and then on a fixed
// 10-second interval; it fails closed, so a fetch error empties the set
// until a later fetch succeeds.
//
// # Usage
//
//	resolver := permissions.NewResolver(apiClient, adminEmail, logger)
//	resolver.OnChange(dash.UpdatePermissions)
//	go resolver.Run(ctx) // cancelled when the dashboard closes
//
// Listener callbacks fire only when the set actually changes; identical
// polls are invisible to subscribers.
package permissions
