package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the status codes views branch on.
var (
	// ErrUnauthorized means the session is invalid everywhere (401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the session is valid but the capability is missing (403).
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means the resource does not exist (404).
	ErrNotFound = errors.New("not found")
	// ErrNoToken is returned by the session token source when not logged in.
	ErrNoToken = errors.New("no auth token in session")
)

// APIError is a non-2xx response from the API, carrying the status code and
// the message body when one was provided. Failures are terminal per request;
// there is no retry.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps well-known status codes to their sentinel errors so callers can
// use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// IsValidation reports whether the error is a 4xx validation failure carrying
// a message for inline display.
func IsValidation(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 &&
		apiErr.StatusCode != http.StatusUnauthorized &&
		apiErr.StatusCode != http.StatusForbidden &&
		apiErr.Message != ""
}
