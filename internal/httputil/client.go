// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/harvest/pkg/types"
)

const defaultRatePerSecond = 2

// Client issues GET requests under a shared rate limit, retrying transient
// failures with DoWithRetry.
type Client struct {
	HTTP       *http.Client
	Limiter    *rate.Limiter
	UserAgent  string
	MaxRetries int
	Logger     *zap.Logger
}

// NewClient builds a Client from the shared HTTP settings.
func NewClient(cfg types.HTTPConfig, logger *zap.Logger) *Client {
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		Limiter:   rate.NewLimiter(rate.Limit(perSecond), 1),
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	}
}

// StatusError reports a non-200 response.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.Status)
}

// Get waits for the rate limiter, sends the request, and returns the
// response body of a 200 response. Any other status is a *StatusError.
func (c *Client) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := DoWithRetry(ctx, c.HTTP, req, c.MaxRetries, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", req.URL.Redacted(), err)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{URL: req.URL.Redacted(), Status: resp.StatusCode}
	}
	return resp.Body, nil
}

// GetBytes returns the full body of a 200 response.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return data, nil
}

// GetJSON decodes the body of a 200 response into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("parsing JSON response: %w", err)
	}
	return nil
}
