// Package tvdb implements a content provider backed by the TVDB API v4.
package tvdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "https://api4.thetvdb.com/v4"
	maxAttempts    = 3
	maxEpisodePage = 100
	loginTimeout   = 30 * time.Second
)

// Sentinel errors for TVDB API responses.
var (
	ErrNotFound     = errors.New("series not found")
	ErrUnauthorized = errors.New("unauthorized: invalid or expired API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
)

// Client is a TVDB API v4 client with JWT authentication.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger

	mu     sync.RWMutex
	token  string
	logins singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetryDelay sets the base delay between retries of rate-limited or
// failed requests.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a new TVDB API v4 client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryDelay: time.Second,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// login authenticates with TVDB and stores the JWT token. Concurrent
// callers share a single login request, which is not tied to any one
// caller's cancellation; each caller stops waiting when its own ctx ends.
func (c *Client) login(ctx context.Context) error {
	ch := c.logins.DoChan("login", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loginTimeout)
		defer cancel()

		body, err := json.Marshal(map[string]string{"apikey": c.apiKey})
		if err != nil {
			return nil, fmt.Errorf("marshal login body: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("create login request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("execute login request: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode == http.StatusUnauthorized {
			return nil, ErrUnauthorized
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("login failed: %s", resp.Status)
		}

		var env envelope[loginData]
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return nil, fmt.Errorf("decode login response: %w", err)
		}
		if env.Data.Token == "" {
			return nil, errors.New("login response missing token")
		}

		c.mu.Lock()
		c.token = env.Data.Token
		c.mu.Unlock()
		c.log.Debug("authenticated with TVDB")
		return nil, nil
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// get performs an authenticated GET and decodes the envelope into out.
// An expired token is refreshed once; rate limits and server errors are
// retried with backoff.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	start := time.Now()
	err := retry.Do(
		func() error { return c.getOnce(ctx, endpoint, out) },
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(retryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.log.Debug("retrying tvdb request", "endpoint", endpoint, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return err
	}
	c.log.Debug("tvdb request", "endpoint", endpoint, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (c *Client) getOnce(ctx context.Context, endpoint string, out any) error {
	if c.currentToken() == "" {
		if err := c.login(ctx); err != nil {
			return retry.Unrecoverable(err)
		}
	}

	resp, err := c.do(ctx, endpoint)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		_ = resp.Body.Close()
		c.log.Debug("token expired, refreshing")

		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		if err := c.login(ctx); err != nil {
			return retry.Unrecoverable(err)
		}
		if resp, err = c.do(ctx, endpoint); err != nil {
			return err
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkResponse(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.Unrecoverable(fmt.Errorf("decode %s: %w", endpoint, err))
	}
	return nil
}

func (c *Client) do(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.currentToken())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

// serverError is a 5xx response.
type serverError struct {
	status string
}

func (e *serverError) Error() string {
	return "TVDB API error: " + e.status
}

func retryable(err error) bool {
	var se *serverError
	return errors.Is(err, ErrRateLimited) || errors.As(err, &se)
}

// checkResponse maps HTTP status codes onto sentinel errors.
func checkResponse(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= http.StatusInternalServerError:
		return &serverError{status: resp.Status}
	default:
		return fmt.Errorf("TVDB API error: %s", resp.Status)
	}
}

// Search searches for series by name.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	var env envelope[[]searchRecord]
	if err := c.get(ctx, "/search?query="+url.QueryEscape(query)+"&type=series", &env); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	results := make([]SearchResult, 0, len(env.Data))
	for _, item := range env.Data {
		id, _ := strconv.Atoi(item.TVDBID)
		if id == 0 {
			// objectID has the form "series-12345"
			if rest, ok := strings.CutPrefix(item.ObjectID, "series-"); ok {
				id, _ = strconv.Atoi(rest)
			}
		}
		if id == 0 {
			continue
		}
		year, _ := strconv.Atoi(item.Year)
		results = append(results, SearchResult{
			ID:       id,
			Name:     item.Name,
			Year:     year,
			Status:   item.Status,
			Overview: item.Overview,
			Network:  item.Network,
			ImageURL: item.ImageURL,
		})
	}
	return results, nil
}

// GetSeries fetches series metadata by TVDB ID.
func (c *Client) GetSeries(ctx context.Context, id int) (*Series, error) {
	var env envelope[seriesRecord]
	if err := c.get(ctx, fmt.Sprintf("/series/%d", id), &env); err != nil {
		return nil, fmt.Errorf("series %d: %w", id, err)
	}

	d := env.Data
	var year int
	if len(d.FirstAired) >= 4 {
		year, _ = strconv.Atoi(d.FirstAired[:4])
	}
	return &Series{
		ID:              d.ID,
		Name:            d.Name,
		Year:            year,
		FirstAired:      d.FirstAired,
		Status:          d.Status.Name,
		Overview:        d.Overview,
		Image:           d.Image,
		OriginalCountry: d.OriginalCountry,
		AverageRuntime:  d.AverageRuntime,
		Score:           d.Score,
	}, nil
}

// GetEpisodes fetches all episodes of a series, following pagination.
func (c *Client) GetEpisodes(ctx context.Context, seriesID int) ([]Episode, error) {
	var episodes []Episode
	for page := 0; ; page++ {
		if page >= maxEpisodePage {
			c.log.Warn("hit pagination limit", "series_id", seriesID, "pages", page)
			break
		}

		var env envelope[episodesData]
		endpoint := fmt.Sprintf("/series/%d/episodes/default?page=%d", seriesID, page)
		if err := c.get(ctx, endpoint, &env); err != nil {
			return nil, fmt.Errorf("series %d episodes: %w", seriesID, err)
		}

		for _, ep := range env.Data.Episodes {
			var aired time.Time
			if ep.Aired != "" {
				aired, _ = time.Parse(time.DateOnly, ep.Aired)
			}
			episodes = append(episodes, Episode{
				ID:       ep.ID,
				Season:   ep.SeasonNumber,
				Episode:  ep.Number,
				Name:     ep.Name,
				Overview: ep.Overview,
				AirDate:  aired,
				Runtime:  ep.Runtime,
				Image:    ep.Image,
			})
		}

		if env.Links.Next == nil || *env.Links.Next == "" {
			break
		}
	}
	return episodes, nil
}
