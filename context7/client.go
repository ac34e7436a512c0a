// Package context7 is a thin client for the Context7 documentation API.
package context7

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
)

const DefaultBaseURL = "https://context7.com/api"

// sourceHeader identifies this plugin to the Context7 API.
const sourceHeader = "hyper-mcp/context7-plugin"

// StatusError is a non-success response from the API. The body is carried
// verbatim so callers can surface it unmodified.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	http    *http.Client
	baseURL *url.URL
	apiKey  string
	version string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if u, err := url.Parse(raw); err == nil {
			c.baseURL = u
		}
	}
}

// WithAPIKey sets the bearer token. An empty key means anonymous access.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithVersion sets the plugin version reported in request headers.
func WithVersion(v string) Option {
	return func(c *Client) { c.version = v }
}

func New(opts ...Option) *Client {
	u, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		http:    http.DefaultClient,
		baseURL: u,
		version: "dev",
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, p string, q url.Values) ([]byte, error) {
	u := *c.baseURL
	u.Path = path.Join(u.Path, p)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Context7-Source", sourceHeader)
	req.Header.Set("X-Context7-Server-Version", c.version)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// SearchLibraries looks up libraries matching name, ranked by relevance to
// query. The raw body is returned alongside the parsed form so callers can
// present it verbatim as text content.
func (c *Client) SearchLibraries(ctx context.Context, name, query string) ([]byte, *SearchResponse, error) {
	q := url.Values{}
	q.Set("libraryName", name)
	q.Set("query", query)
	body, err := c.get(ctx, "v2/libs/search", q)
	if err != nil {
		return nil, nil, err
	}
	var sr SearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, nil, fmt.Errorf("decode search response: %w", err)
	}
	return body, &sr, nil
}

// DocsText fetches the human-readable rendering of a documentation query.
func (c *Client) DocsText(ctx context.Context, libraryID, query string) (string, error) {
	q := url.Values{}
	q.Set("libraryId", libraryID)
	q.Set("query", query)
	q.Set("type", "txt")
	body, err := c.get(ctx, "v2/context", q)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// DocsJSON fetches the structured rendering of the same query.
func (c *Client) DocsJSON(ctx context.Context, libraryID, query string) (*DocsResponse, error) {
	q := url.Values{}
	q.Set("libraryId", libraryID)
	q.Set("query", query)
	q.Set("type", "json")
	body, err := c.get(ctx, "v2/context", q)
	if err != nil {
		return nil, err
	}
	var dr DocsResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return nil, fmt.Errorf("decode docs response: %w", err)
	}
	return &dr, nil
}
