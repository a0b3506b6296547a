// Package events provides a typed publish/subscribe bus for authorization
// signals shared between the HTTP client and the dashboards.
//
// # Overview
//
// Two event types flow through the bus:
//
//   - AuthorizationDenied: an API call or tab switch was rejected (403);
//     the session is still valid and the owning view shows a denial notice.
//   - SessionExpired: an API call returned 401; the session has been
//     invalidated globally and the user must log in again.
//
// # Usage
//
//	bus := events.NewBus()
//	sub := bus.SubscribeAuthorizationDenied(func(e events.AuthorizationDenied) {
//		// show permission-denied notice
//	})
//	defer sub.Close()
//
// Multiple subscribers may coexist; each holds its own handle and delivery
// is synchronous.
package events
