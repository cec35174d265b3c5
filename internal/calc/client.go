// Package calc is the HTTP client for the remote evaluation endpoint.
//
// The endpoint accepts POST {"expr": "..."} and answers with
// {"ok": true, "result": ...} or {"ok": false, "error": "..."}. Non-2xx
// responses may carry {"error": "..."} or an arbitrary body.
package calc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// DefaultEndpoint is where the reference server listens.
const DefaultEndpoint = "http://127.0.0.1:5000/api/calc"

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// ── Wire types ───────────────────────────────────────────────────

type request struct {
	Expr string `json:"expr"`
}

type response struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

type errorBody struct {
	Error string `json:"error"`
}

// ── Client ───────────────────────────────────────────────────────

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// Client talks to the evaluation endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      *logger.Logger
}

// Compile-time interface check.
var _ domain.Evaluator = (*Client)(nil)

// NewClient creates an evaluation client for the given endpoint URL
// (e.g. "http://127.0.0.1:5000/api/calc").
func NewClient(endpoint string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Evaluate sends expr and returns the result value. Errors are
// *domain.TransportError, *domain.StatusError, *domain.RejectedError, or
// wrap domain.ErrMalformedResponse.
func (c *Client) Evaluate(ctx context.Context, expr string) (string, error) {
	if strings.TrimSpace(expr) == "" {
		return "", domain.ErrEmptyExpression
	}

	jsonData, err := json.Marshal(request{Expr: expr})
	if err != nil {
		return "", fmt.Errorf("calc: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", &domain.TransportError{Err: fmt.Errorf("calc: create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debug("calc: POST %s %s", c.endpoint, jsonData)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("calc: request failed: %v", err)
		return "", &domain.TransportError{Err: fmt.Errorf("calc: request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(resp.StatusCode, body, readErr)
	}
	if readErr != nil {
		return "", &domain.TransportError{Err: fmt.Errorf("calc: read response: %w", readErr)}
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		c.log.Warn("calc: undecodable %d body: %s", resp.StatusCode, truncate(string(body), 120))
		return "", fmt.Errorf("calc: decode response: %w: %v", domain.ErrMalformedResponse, err)
	}
	if !out.OK {
		return "", &domain.RejectedError{Message: out.Error}
	}

	value, err := resultText(out.Result)
	if err != nil {
		return "", err
	}
	c.log.Debug("calc: %q = %s", expr, value)
	return value, nil
}

// statusError builds the error for a non-2xx response. A body that is not
// JSON, or is JSON null, yields an unstructured error, rendered by status
// code alone.
func statusError(code int, body []byte, readErr error) *domain.StatusError {
	se := &domain.StatusError{Code: code}
	if readErr != nil || !json.Valid(body) || string(bytes.TrimSpace(body)) == "null" {
		return se
	}
	se.Structured = true
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		se.Message = eb.Error
	}
	return se
}

// resultText renders the result field verbatim: strings unquoted, numbers
// and other JSON values as written.
func resultText(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", fmt.Errorf("calc: missing result: %w", domain.ErrMalformedResponse)
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("calc: decode result: %w: %v", domain.ErrMalformedResponse, err)
		}
		return s, nil
	}
	return trimmed, nil
}

// truncate shortens s to at most n bytes, cutting on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
