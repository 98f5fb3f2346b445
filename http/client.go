// Package http provides the HTTP client for the remote extraction service
// and the web front-end of the link extractor view.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/linkx"
)

// DefaultBaseURL is the base URL of the hosted extraction service.
const DefaultBaseURL = "https://web-production-146f.up.railway.app"

// DefaultTimeout is the default timeout for extraction requests.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Ensure Client implements linkx.Extractor at compile time.
var _ linkx.Extractor = (*Client)(nil)

// Client submits URLs to the extraction service's POST /extract endpoint.
type Client struct {
	baseURL   string
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for extraction requests.
// Defaults to DefaultTimeout (30s) if not specified. Ignored when
// WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a Client for the service at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// BaseURL returns the service base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type extractRequest struct {
	URL string `json:"url"`
}

type extractResponse struct {
	Links *[]linkx.ExtractedLink `json:"links"`
}

type errorResponse struct {
	Error json.RawMessage `json:"error"`
}

// Extract posts url to the service and returns the links it found.
//
// A non-2xx response carrying a non-empty string "error" field returns
// EREMOTE with that message. A 2xx response without a "links" array
// returns EINTERNAL.
func (c *Client) Extract(ctx context.Context, url string) ([]linkx.ExtractedLink, error) {
	body, err := json.Marshal(extractRequest{URL: url})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extract request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var out extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, linkx.Errorf(linkx.EINTERNAL, "decode extract response: %v", err)
	}
	if out.Links == nil {
		return nil, linkx.Errorf(linkx.EINTERNAL, "extract response has no links")
	}
	return *out.Links, nil
}

// decodeError converts a non-2xx response into an error, preferring the
// message the service put in its "error" field.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var er errorResponse
	if err := json.Unmarshal(data, &er); err == nil && len(er.Error) > 0 {
		var msg string
		if err := json.Unmarshal(er.Error, &msg); err == nil && msg != "" {
			return linkx.Errorf(linkx.EREMOTE, "%s", msg)
		}
	}
	return fmt.Errorf("HTTP %d from %s", resp.StatusCode, resp.Request.URL)
}
