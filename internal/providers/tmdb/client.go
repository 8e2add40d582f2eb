package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/patrickmn/go-cache"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org"
	defaultCacheTTL = time.Hour
	cacheCleanup    = 10 * time.Minute
	maxAttempts     = 3
)

var (
	// ErrNotFound is returned when a title doesn't exist in TMDB.
	ErrNotFound = errors.New("not found in tmdb")

	// ErrUnauthorized is returned when the API key is rejected.
	ErrUnauthorized = errors.New("tmdb api key rejected")
)

// statusError is a non-success HTTP response.
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return "tmdb api error: " + e.status
}

func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	return false
}

// Client is a TMDB API client. Responses are cached in memory by request
// path and query.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	retryDelay time.Duration
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithCacheTTL sets the cache TTL. A non-positive ttl disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl <= 0 {
			c.cache = nil
			return
		}
		c.cache = cache.New(ttl, cacheCleanup)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetryDelay sets the pause before retrying a throttled or failed
// request.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithLogger sets the client logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:      cache.New(defaultCacheTTL, cacheCleanup),
		retryDelay: time.Second,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetMovie fetches movie metadata with credits, videos, recommendations
// and certifications.
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	var m Movie
	q := url.Values{"append_to_response": {"credits,videos,recommendations,release_dates"}}
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d", id), q, &m); err != nil {
		return nil, fmt.Errorf("movie %d: %w", id, err)
	}
	return &m, nil
}

// GetTV fetches series metadata with credits, videos, recommendations and
// content ratings. Episodes are fetched per season with GetSeason.
func (c *Client) GetTV(ctx context.Context, id int64) (*TV, error) {
	var t TV
	q := url.Values{"append_to_response": {"credits,videos,recommendations,content_ratings"}}
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d", id), q, &t); err != nil {
		return nil, fmt.Errorf("tv %d: %w", id, err)
	}
	return &t, nil
}

// GetSeason fetches one season of a series with its episodes.
func (c *Client) GetSeason(ctx context.Context, tvID int64, season int) (*Season, error) {
	var s Season
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d/season/%d", tvID, season), nil, &s); err != nil {
		return nil, fmt.Errorf("tv %d season %d: %w", tvID, season, err)
	}
	return &s, nil
}

// SearchMulti searches movies, series and people at once.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*Page[SearchResult], error) {
	var p Page[SearchResult]
	q := url.Values{"query": {query}, "page": {strconv.Itoa(page)}, "include_adult": {"false"}}
	if err := c.get(ctx, "/3/search/multi", q, &p); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return &p, nil
}

// List fetches one page of a list endpoint such as "movie/popular" or
// "trending/all/week".
func (c *Client) List(ctx context.Context, path string, page int) (*Page[SearchResult], error) {
	var p Page[SearchResult]
	q := url.Values{"page": {strconv.Itoa(page)}}
	if err := c.get(ctx, "/3/"+path, q, &p); err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	return &p, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	key := path + "?" + query.Encode()

	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			return decode(body.([]byte), out)
		}
	}

	query.Set("api_key", c.apiKey)
	endpoint := c.baseURL + path + "?" + query.Encode()

	start := time.Now()
	body, err := retry.DoWithData(
		func() ([]byte, error) { return c.fetch(ctx, endpoint) },
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(retryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.log.Debug("retrying tmdb request", "path", path, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return err
	}
	c.log.Debug("tmdb request", "path", path, "duration_ms", time.Since(start).Milliseconds())

	if err := decode(body, out); err != nil {
		return err
	}
	if c.cache != nil {
		c.cache.Set(key, body, cache.DefaultExpiration)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
