package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound is returned when the server answers 404.
//
// The converter uses it to fall back from the per-headphone
// "<name> ParametricEQ.txt" file to the generic "ParametricEQ.csv".
var ErrNotFound = errors.New("resource not found")

// Client wraps HTTP operations for fetching AutoEq data from GitHub's
// raw-content host.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Plain and conditional (ETag revalidating) GET requests
//
// Example usage:
//
//	client := NewClient()
//
//	// Fetch profile text
//	text, err := client.GetString(ctx, profileURL)
//
//	// Revalidate the index against a cached ETag
//	body, etag, notModified, err := client.GetConditional(ctx, indexURL, cachedETag)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client for AutoEq fetches.
//
// The client is configured with:
//   - 30 second timeout
//   - "autoeq-fiio" User-Agent header
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "autoeq-fiio",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns ErrNotFound (wrapped) on a 404 response, and a plain error for
// any other non-200 status or transport failure.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the response body as a string.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetConditional performs a GET request with If-None-Match revalidation.
//
// When etag is non-empty it is sent as If-None-Match. A 304 response
// returns notModified=true with a nil body; the caller should reuse its
// cached copy. On a 200 response the body and the new ETag (possibly
// empty if the server stopped sending one) are returned.
//
// Example:
//
//	body, newETag, notModified, err := client.GetConditional(ctx, indexURL, cachedETag)
//	if notModified {
//	    body = cachedBody
//	}
func (c *Client) GetConditional(ctx context.Context, url, etag string) (body []byte, newETag string, notModified bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", false, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return nil, etag, true, nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, "", false, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", false, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", false, err
	}

	return body, resp.Header.Get("ETag"), false, nil
}
