// Package client calls the itinerary PDF API over HTTP.
//
// Non-2xx responses surface as *APIError carrying the server's message.
// Network failures and unreadable responses surface as *TransportError,
// which matches ErrTransport under errors.Is. Nothing is retried: rendering
// is deterministic, so an identical request fails identically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/vigovia/itinerary-pdf/internal/domain"
)

// DefaultBaseURL is used when neither New nor ITINERARY_API_URL supply one.
const DefaultBaseURL = "http://localhost:5000/api"

// EnvBaseURL names the environment variable that overrides DefaultBaseURL.
const EnvBaseURL = "ITINERARY_API_URL"

// User-facing messages for transport failures.
const (
	msgGenerateFailed = "Failed to generate PDF. Please try again."
	msgUnavailable    = "Backend server is not available"
)

// ErrTransport is matched by every *TransportError.
var ErrTransport = errors.New("transport error")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// TransportError is a request that never produced a usable response.
// Message is safe to show to end users; Err is the underlying cause.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string   { return e.Message }
func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// Health is the body of GET /health.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Client issues health and generate calls against one API base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client (60s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger that receives the causes of transport failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client for baseURL. An empty baseURL falls back to
// $ITINERARY_API_URL, then DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = os.Getenv(EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalised base URL requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// GeneratePDF posts doc to /generate-pdf and returns the PDF bytes.
func (c *Client) GeneratePDF(ctx context.Context, doc *domain.Itinerary) ([]byte, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("client.GeneratePDF: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-pdf", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("client.GeneratePDF: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transport(ctx, msgGenerateFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transport(ctx, msgGenerateFailed, err)
	}
	c.log.DebugContext(ctx, "pdf received", "bytes", len(pdf), "reference", resp.Header.Get("X-Itinerary-Ref"))
	return pdf, nil
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return Health{}, fmt.Errorf("client.Health: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Health{}, c.transport(ctx, msgUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Health{}, apiError(resp)
	}

	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Health{}, c.transport(ctx, msgUnavailable, err)
	}
	return h, nil
}

func (c *Client) transport(ctx context.Context, msg string, cause error) error {
	c.log.ErrorContext(ctx, "api request failed", "base_url", c.baseURL, "error", cause)
	return &TransportError{Message: msg, Err: cause}
}

// apiError reads the server's JSON error body. A body that is not JSON or has
// no message falls back to the status code.
func apiError(resp *http.Response) *APIError {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body)

	msg := body.Message
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
