// Package swapi implements the remote collection client for the Star Wars API.
package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
)

// DefaultBaseURL is the SWAPI people endpoint.
const DefaultBaseURL = "https://swapi.dev/api/people/"

// maxBodySize caps response bodies read from the API.
const maxBodySize = 4 << 20

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// HTTPClient overrides the default client built from Timeout.
	HTTPClient *http.Client
}

// DefaultOptions returns the default client options.
func DefaultOptions() Options {
	return Options{
		BaseURL:   DefaultBaseURL,
		Timeout:   15 * time.Second,
		UserAgent: "swapi-browser",
	}
}

// Client talks to a SWAPI-compatible collection endpoint.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

var _ catalog.Client = (*Client)(nil)

// NewClient creates a new Client.
func NewClient(logger *slog.Logger, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(opts.BaseURL, "/") {
		opts.BaseURL += "/"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		logger:     logger,
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		httpClient: httpClient,
	}
}

// BaseURL returns the collection endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchCollection returns the results of the collection endpoint.
func (c *Client) FetchCollection(ctx context.Context) ([]catalog.Entity, error) {
	const op = "fetch characters"

	var page catalog.Page
	status, err := c.getJSON(ctx, op, c.baseURL, &page)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, &catalog.NetworkError{Op: op, URL: c.baseURL, StatusCode: status}
	}

	c.logger.Debug("Fetched collection", "count", page.Count, "results", len(page.Results))
	return page.Results, nil
}

// FetchRelatedName returns the name field of the resource at ref.
func (c *Client) FetchRelatedName(ctx context.Context, ref string) (string, error) {
	const op = "fetch species"

	var res catalog.Resource
	status, err := c.getJSON(ctx, op, ref, &res)
	if err != nil {
		return "", err
	}
	if !isSuccess(status) {
		return "", &catalog.NetworkError{Op: op, URL: ref, StatusCode: status}
	}
	return res.Name, nil
}

// FetchEntityByPosition fetches the entity at the zero-based position.
// A non-success status means the entity does not exist and yields (nil, nil).
func (c *Client) FetchEntityByPosition(ctx context.Context, position int) (*catalog.Entity, error) {
	if position < 0 {
		return nil, nil
	}

	url := c.baseURL + strconv.Itoa(position+1) + "/"
	var e catalog.Entity
	status, err := c.getJSON(ctx, "fetch character", url, &e)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		c.logger.Debug("Entity absent", "url", url, "status", status)
		return nil, nil
	}
	return &e, nil
}

// getJSON performs one GET and decodes a successful body into out.
// The status code is returned for non-success responses without decoding.
func (c *Client) getJSON(ctx context.Context, op, url string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, &catalog.NetworkError{Op: op, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &catalog.NetworkError{Op: op, URL: url, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("GET", "url", url, "status", resp.StatusCode, "duration", time.Since(start))

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		return resp.StatusCode, &catalog.NetworkError{
			Op:         op,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decoding response: %w", err),
		}
	}
	return resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
