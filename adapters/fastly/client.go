// Package fastly fetches monthly usage from the Fastly billing API.
package fastly

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"cdn-cost/core/types"
	"cdn-cost/internal/errors"
	"cdn-cost/internal/logging"
)

// usagePath is the per-month usage endpoint
const usagePath = "/stats/usage_by_month"

// maxErrorBody bounds how much of a failed response is kept for diagnostics
const maxErrorBody = 512

// Config configures the usage client
type Config struct {
	// BaseURL is the API root, e.g. https://api.fastly.com
	BaseURL string

	// APIKey is sent in the Fastly-Key header
	APIKey string

	// HTTPTimeout bounds a single request
	HTTPTimeout time.Duration
}

// DefaultConfig returns production defaults without a key
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "https://api.fastly.com",
		HTTPTimeout: 30 * time.Second,
	}
}

// Client retrieves usage documents
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a usage client
func NewClient(cfg *Config, opts ...Option) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.OrGlobal(c.logger)
	return c
}

// UsageURL returns the request URL for a billing month
func (c *Client) UsageURL(month time.Month, year int) string {
	q := url.Values{}
	q.Set("billable_units", "true")
	q.Set("month", strconv.Itoa(int(month)))
	q.Set("year", strconv.Itoa(year))
	return c.baseURL + usagePath + "?" + q.Encode()
}

// FetchUsage retrieves the usage document for a month. A non-200 answer or
// a failed round trip is a transport error. The document status is left for
// the caller to judge.
func (c *Client) FetchUsage(ctx context.Context, month time.Month, year int) (*types.UsageDocument, error) {
	target := c.UsageURL(month, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Internal("failed to create usage request", err)
	}
	req.Header.Set("Fastly-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.TypeTransport, "usage request failed", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("fetched usage",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.Transport(resp.StatusCode).
			WithContext("body", strings.TrimSpace(string(body)))
	}

	var doc types.UsageDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.Parsing(fmt.Sprintf("failed to decode usage for %04d-%02d", year, int(month)), err)
	}
	return &doc, nil
}
