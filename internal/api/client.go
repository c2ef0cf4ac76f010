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

// TokenSource supplies the bearer token attached to authenticated requests.
// Returning an empty string leaves the request unauthenticated.
type TokenSource interface {
	AccessToken() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) AccessToken() string { return f() }

// Client talks to the EduAI platform API. Read queries are cached within a
// freshness window and retried once on transient failure; mutating calls are
// never retried.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	cache   *readCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// WithCacheTTL sets the freshness window for cached read queries.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = newReadCache(ttl) }
}

// NewClient creates a Client rooted at baseURL. tokens may be nil for a
// client that only performs unauthenticated calls.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		cache:   newReadCache(5 * time.Minute),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET, serving from the read cache when fresh and retrying
// exactly once on transient failure.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	key := cacheKey(path, query)
	if body, ok := c.cache.lookup(key); ok {
		if out == nil {
			return nil
		}
		return json.Unmarshal(body, out)
	}

	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil && retryable(err) {
		body, err = c.do(ctx, http.MethodGet, path, query, nil)
	}
	if err != nil {
		return err
	}

	c.cache.store(key, body)
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

// post performs a POST. Mutations are never retried, and they drop all
// cached reads so later queries observe their effect.
func (c *Client) post(ctx context.Context, path string, query url.Values, in, out any) error {
	return c.send(ctx, http.MethodPost, path, query, in, out)
}

// put performs a PUT with the same rules as post.
func (c *Client) put(ctx context.Context, path string, query url.Values, in, out any) error {
	return c.send(ctx, http.MethodPut, path, query, in, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	c.cache.clear()

	body, err := c.do(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.AccessToken(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, data)
	}
	return data, nil
}
