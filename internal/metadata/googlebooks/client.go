// Package googlebooks provides a rate-limited client for the Google Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://www.googleapis.com"

	// Rate limit: 2 requests per second, burst of 3.
	defaultRPS   = 2.0
	defaultBurst = 3

	// HTTP client settings
	defaultTimeout = 30 * time.Second
)

// Volume is the raw metadata the API reports for a matched ISBN.
// Absent fields keep their zero values; the caller applies fallbacks.
type Volume struct {
	Authors       []string
	Publisher     string
	PublishedDate string
}

// Client is a rate-limited Google Books API client.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	baseURL string
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests and stubs.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithRateLimit overrides the outbound request rate.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New creates a new Google Books client.
func New(logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(defaultRPS), defaultBurst),
		baseURL: defaultBaseURL,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves volume metadata for an ISBN. It returns ErrNoMatch
// when the API reports zero matching items and ErrUnavailable when the
// service cannot be reached or answers with an error status.
func (c *Client) Lookup(ctx context.Context, isbn string) (*Volume, error) {
	// Wait for rate limit
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	query := url.Values{}
	query.Set("q", "isbn:"+isbn)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/books/v1/volumes?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "BookClub/1.0")

	c.logger.Debug("google books request", "isbn", isbn)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var payload volumesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if payload.TotalItems == 0 || len(payload.Items) == 0 {
		return nil, ErrNoMatch
	}

	info := payload.Items[0].VolumeInfo
	return &Volume{
		Authors:       info.Authors,
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
	}, nil
}

// Raw API response types (internal)

type volumesResponse struct {
	TotalItems int          `json:"totalItems"`
	Items      []volumeItem `json:"items"`
}

type volumeItem struct {
	VolumeInfo rawVolumeInfo `json:"volumeInfo"`
}

type rawVolumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"publishedDate"`
}
