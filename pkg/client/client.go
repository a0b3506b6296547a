package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/devpulse/hackhub/pkg/events"
	"github.com/devpulse/hackhub/pkg/observability"
	"github.com/devpulse/hackhub/pkg/session"
)

// DefaultTimeout bounds every request when the config does not set one.
const DefaultTimeout = 15 * time.Second

// Config holds the client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the HTTP client for the HackHub API. Every request carries the
// session bearer token when one exists; 401 and 403 responses are intercepted
// centrally regardless of which resource produced them.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	logger     *observability.Logger
	metrics    *observability.Metrics
}

// New creates a client. The bus receives session-expired and
// authorization-denied events published by the interceptor.
func New(cfg Config, store session.Store, bus *events.Bus, logger *observability.Logger, metrics *observability.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	transport := &sessionTransport{
		base:   otelhttp.NewTransport(http.DefaultTransport),
		source: &sessionTokenSource{store: store},
		store:  store,
		bus:    bus,
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
		store:      store,
		logger:     logger,
		metrics:    metrics,
	}
}

// sessionTokenSource reads the bearer token from the session store on every
// request, so a refreshed token is picked up without rebuilding the client.
type sessionTokenSource struct {
	store session.Store
}

// Token implements oauth2.TokenSource.
func (s *sessionTokenSource) Token() (*oauth2.Token, error) {
	token := session.Token(context.Background(), s.store)
	if token == "" {
		return nil, ErrNoToken
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// sessionTransport injects the bearer token and intercepts authentication and
// authorization failures for the whole client.
type sessionTransport struct {
	base   http.RoundTripper
	source oauth2.TokenSource
	store  session.Store
	bus    *events.Bus
}

// RoundTrip implements http.RoundTripper.
func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if token, err := t.source.Token(); err == nil {
		token.SetAuthHeader(clone)
	}

	resp, err := t.base.RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// The session is invalid everywhere, not just for this call.
		session.ClearAuth(req.Context(), t.store)
		if t.bus != nil {
			t.bus.PublishSessionExpired(events.SessionExpired{Path: req.URL.Path})
		}
	case http.StatusForbidden:
		// Authorization failure: the session stays valid.
		if t.bus != nil {
			t.bus.PublishAuthorizationDenied(events.AuthorizationDenied{Path: req.URL.Path})
		}
	}
	return resp, nil
}

// do issues one request and decodes the JSON response into out when non-nil.
// Errors other than 401/403 propagate to the caller unchanged; there is no
// retry or backoff.
func (c *Client) do(ctx context.Context, resource, method, path string, body, out interface{}) error {
	start := time.Now()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	requestID := uuid.NewString()
	ctx = observability.WithRequestID(ctx, requestID)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveAPIRequest(resource, method, "network_error", time.Since(start))
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.ObserveAPIRequest(resource, method, strconv.Itoa(resp.StatusCode), time.Since(start))
	}

	if resp.StatusCode >= 400 {
		apiErr := readAPIError(resp)
		c.logger.WithField("request_id", observability.GetRequestID(ctx)).
			WithFields(map[string]interface{}{
				"resource": resource,
				"method":   method,
				"path":     path,
				"status":   resp.StatusCode,
			}).Debug("api request failed")
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, resource, path string, out interface{}) error {
	return c.do(ctx, resource, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, resource, path string, body, out interface{}) error {
	return c.do(ctx, resource, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, resource, path string, body, out interface{}) error {
	return c.do(ctx, resource, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, resource, path string) error {
	return c.do(ctx, resource, http.MethodDelete, path, nil, nil)
}

// readAPIError extracts the error message body, tolerating both the "error"
// and "message" shapes the API uses.
func readAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		} else {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
