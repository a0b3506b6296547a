package httputil

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ParseJSON decodes the request body into the given destination
func ParseJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// ParseJSONOrError decodes the request body, writing a 400 response on
// failure. Returns false when the response has already been written.
func ParseJSONOrError(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := ParseJSON(r, dst); err != nil {
		WriteValidationError(w, "invalid request body")
		return false
	}
	return true
}

// BearerToken extracts the bearer token from the Authorization header.
// Returns false when the header is missing or uses a different scheme.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

// RequireNonEmpty checks name/value pairs in order and writes a 400 response
// naming the first empty value. Returns false when the response has already
// been written.
func RequireNonEmpty(w http.ResponseWriter, pairs ...string) bool {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			WriteValidationError(w, pairs[i]+" is required")
			return false
		}
	}
	return true
}
