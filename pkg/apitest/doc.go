// Package apitest provides an in-memory fake of the hackathon API for tests
// and for the mock-server command.
//
// # Overview
//
// The fake serves the same route families as the deployed backend: public
// auth endpoints, authenticated participant resources, and the /admin and
// /s/admin variants gated per-capability. It returns the same error body
// shape ({"error": "..."}) and the same status codes the client's error
// taxonomy is built around, so 401 and 403 handling can be exercised end to
// end without a real backend.
//
// # Usage
//
//	srv := apitest.NewServer(nil)
//	srv.SeedDemo()
//	ts := httptest.NewServer(srv)
//	defer ts.Close()
package apitest
