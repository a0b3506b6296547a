// Package httputil provides shared HTTP server utilities.
//
// # Overview
//
// The helpers keep the fake hackathon API's response shapes consistent:
// every error body is {"error": message}, matching what the client's error
// decoder expects. Middleware covers request logging (logrus), panic
// recovery, and body size limits.
package httputil
