package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds each upstream call end to end. A single attempt
// per call, no retries.
const DefaultTimeout = 30 * time.Second

const (
	everythingPath   = "/everything"
	topHeadlinesPath = "/top-headlines"
)

// Client performs authenticated GETs against a NewsAPI-compatible base
// URL. It holds no cross-call state beyond its configuration and is safe
// for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithTimeout overrides the default 30-second request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent upstream.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient builds a Client for the given base URL and API key. Both are
// required; a trailing slash on the base URL is tolerated.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("newsapi: API key cannot be empty")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("newsapi: base URL cannot be empty")
	}
	c := &Client{
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "newsapi-mcp/1.0",
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search queries the /everything endpoint. Parameters are validated
// before any network I/O; a validation failure returns a *Error with
// KindValidation and makes no request.
func (c *Client) Search(ctx context.Context, params SearchParams) (*Response, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.get(ctx, everythingPath, params.Values())
}

// TopHeadlines queries the /top-headlines endpoint, with the same
// validate-then-request contract as Search.
func (c *Client) TopHeadlines(ctx context.Context, params HeadlineParams) (*Response, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.get(ctx, topHeadlinesPath, params.Values())
}

// get issues one GET against path with the encoded query, then decodes
// the body. Non-2xx statuses are transport failures and the body is not
// decoded; the status code is kept for diagnostics.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*Response, error) {
	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportErr("failed to create request", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportErr("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, transportErr(fmt.Sprintf("upstream returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, decodeErr("failed to read response body", err)
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, decodeErr("failed to parse response JSON", err)
	}
	if out.Status == "" {
		return nil, decodeErr("response is missing required field 'status'", nil)
	}
	if out.Articles == nil {
		return nil, decodeErr("response is missing required field 'articles'", nil)
	}
	return &out, nil
}
