package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Catalog defines the read-only movie catalog surface consumed by the UI.
// This interface is implemented by *Client and can be used for testing.
type Catalog interface {
	TrendingMovies(ctx context.Context) []Movie
	PopularMovies(ctx context.Context) []Movie
	SearchMovies(ctx context.Context, query string) []Movie
	MovieDetails(ctx context.Context, id int) *Movie
	ImageURL(fragment string) string
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

// Client talks to the TMDB HTTP API. Listing and search failures degrade to
// empty results so the browse surfaces never block on a flaky network; the
// underlying errors are logged instead.
type Client struct {
	baseURL   *url.URL
	imageBase string
	apiKey    string
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

const (
	defaultUserAgent = "streambox/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given catalog base URL and image base.
func NewClient(baseURL, imageBase, apiKey string, logger *zap.Logger) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   base,
		imageBase: strings.TrimRight(imageBase, "/"),
		apiKey:    apiKey,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		logger:    logger,
	}, nil
}

// TrendingMovies retrieves this week's trending movies. On failure it returns
// an empty list and logs the cause.
func (c *Client) TrendingMovies(ctx context.Context) []Movie {
	movies, err := c.fetchList(ctx, "/trending/movie/week", nil)
	if err != nil {
		c.logger.Warn("trending fetch failed", zap.Error(err))
		return nil
	}
	return movies
}

// PopularMovies retrieves the popular movies listing. Same failure policy as
// TrendingMovies.
func (c *Client) PopularMovies(ctx context.Context) []Movie {
	movies, err := c.fetchList(ctx, "/movie/popular", nil)
	if err != nil {
		c.logger.Warn("popular fetch failed", zap.Error(err))
		return nil
	}
	return movies
}

// SearchMovies retrieves movies matching the query. Empty or whitespace-only
// queries short-circuit to an empty result without a network call.
func (c *Client) SearchMovies(ctx context.Context, query string) []Movie {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	values := url.Values{}
	values.Set("query", trimmed)
	movies, err := c.fetchList(ctx, "/search/movie", values)
	if err != nil {
		c.logger.Warn("search failed", zap.String("query", trimmed), zap.Error(err))
		return nil
	}
	return movies
}

// MovieDetails retrieves a single movie by ID, or nil on failure.
func (c *Client) MovieDetails(ctx context.Context, id int) *Movie {
	var payload Movie
	if err := c.do(ctx, "/movie/"+strconv.Itoa(id), nil, &payload); err != nil {
		c.logger.Warn("details fetch failed", zap.Int("movie_id", id), zap.Error(err))
		return nil
	}
	return &payload
}

// ImageURL resolves a poster or backdrop path fragment against the image
// base. An absent fragment resolves to "" and the caller renders a
// placeholder instead.
func (c *Client) ImageURL(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	if !strings.HasPrefix(fragment, "/") {
		fragment = "/" + fragment
	}
	return c.imageBase + fragment
}

func (c *Client) fetchList(ctx context.Context, path string, values url.Values) ([]Movie, error) {
	var payload listResponse
	if err := c.do(ctx, path, values, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *Client) do(ctx context.Context, path string, values url.Values, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if values == nil {
		values = url.Values{}
	}
	if c.apiKey != "" {
		values.Set("api_key", c.apiKey)
	}
	// JoinPath keeps any path prefix on the base URL (TMDB mounts the API
	// under /3) which ResolveReference would discard.
	reqURL := c.baseURL.JoinPath(path)
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("catalog %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog base URL is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse catalog base %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
