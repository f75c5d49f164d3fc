// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "agentceo/cli/internal/errors"
	"agentceo/cli/internal/logging"
	"agentceo/cli/internal/manifest"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// DefaultTimeout applies when no client or timeout option is given.
const DefaultTimeout = 30 * time.Second

// HTTP implements API over the agent service's REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://api.hiresynapse.ai")
	baseURL string
	// endpoints contains the URL paths for the API endpoints
	endpoints manifest.HTTPEndpoints
	// client is the underlying HTTP client
	client *http.Client
	// tokens supplies the bearer token at call time
	tokens TokenSource
	log    *pterm.Logger
}

// Option configures an HTTP client.
type Option func(*HTTP)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTP) { h.client.Timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *pterm.Logger) Option {
	return func(h *HTTP) { h.log = l }
}

// New creates an HTTP client for baseURL. tokens may be nil for calls that
// never need authentication.
func New(baseURL string, endpoints manifest.HTTPEndpoints, tokens TokenSource, opts ...Option) *HTTP {
	h := &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints.WithDefaults(),
		client:    &http.Client{Timeout: DefaultTimeout},
		tokens:    tokens,
		log:       logging.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// StatusError is a non-2xx response. Its message is the raw response body,
// which is what the user gets to see.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// doJSON sends an authenticated request with an optional JSON body and decodes
// a JSON response into out when out is non-nil.
func (h *HTTP) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if h.tokens != nil {
		token, err := h.tokens.Token()
		if err != nil {
			return fmt.Errorf("read access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return h.send(req, out)
}

// send executes req, maps failures onto the error taxonomy and decodes out.
func (h *HTTP) send(req *http.Request, out any) error {
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug("request failed", h.log.Args(
			"request_id", reqID,
			"method", req.Method,
			"path", req.URL.Path,
			"error", logging.Mask(err.Error()),
		))
		return apperrors.Wrap(apperrors.NetworkFailed, "", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(apperrors.NetworkFailed, "read response", err)
	}

	h.log.Debug("request", h.log.Args(
		"request_id", reqID,
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond).String(),
	))
	h.log.Trace("response body", h.log.Args("request_id", reqID, "body", logging.Mask(string(data))))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.Wrap(apperrors.RequestFailed, "", &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		})
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Wrap(apperrors.RequestFailed, "decode response", err)
	}
	return nil
}
