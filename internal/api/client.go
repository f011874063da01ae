package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current bearer token, or "" when the user is not
// authenticated. Implementations are expected to read from durable storage.
type TokenSource interface {
	Token() (string, error)
}

// Client wraps the NextStep backend HTTP API. Every request carries
// `Authorization: Bearer <token>` when the token source yields one.
//
// Requests that fail with a transient network error are replayed exactly
// once after a fixed delay. HTTP status errors are surfaced as *HTTPError
// and never retried at this layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	// uploadClient has no overall timeout: upload attempts are bounded by
	// the caller's context deadline instead of the per-request timeout.
	uploadClient *http.Client
	tokens       TokenSource
	retryDelay   time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

// NewClient creates a Client for the given base URL.
// timeout bounds each regular request; retryDelay is the fixed wait before
// the single transient-failure replay. tokens may be nil for an
// unauthenticated client.
func NewClient(baseURL string, timeout, retryDelay time.Duration, tokens TokenSource) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parsing api base URL: %w", err)
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		uploadClient: &http.Client{},
		tokens:       tokens,
		retryDelay:   retryDelay,
		sleep:        sleepCtx,
	}, nil
}

// do performs a JSON request with the single-shot transient retry policy.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, c.retryDelay); err != nil {
				return lastErr
			}
		}

		err := c.doOnce(ctx, method, path, "application/json; charset=utf-8", payload, c.httpClient, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsNetworkError(err) {
			return err
		}
	}
	return lastErr
}

// doOnce performs a single request without retry.
func (c *Client) doOnce(ctx context.Context, method, path, contentType string, payload []byte, hc *http.Client, out any) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	c.attachToken(req)

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil // empty body
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// attachToken adds the bearer header if a token is available.
// Token source failures are best-effort: the request goes out unauthenticated.
func (c *Client) attachToken(req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token()
	if err != nil || token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
