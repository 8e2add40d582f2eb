package tmdb

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/couchtv/pkg/provider"
)

// Name is the provider name stamped on every item.
const Name = "tmdb"

const (
	defaultSeasonConcurrency = 4
	maxCast                  = 15
	posterSize               = "w500"
	backdropSize             = "original"
	profileSize              = "w185"
	stillSize                = "w300"
	certificationCountry     = "US"
)

var mainPage = []provider.MainPageData{
	{Name: "Trending", Data: "trending/all/week", Horizontal: true},
	{Name: "Popular Movies", Data: "movie/popular"},
	{Name: "Popular Series", Data: "tv/popular"},
	{Name: "Top Rated Movies", Data: "movie/top_rated"},
	{Name: "Top Rated Series", Data: "tv/top_rated"},
	{Name: "Now Playing", Data: "movie/now_playing"},
	{Name: "Upcoming", Data: "movie/upcoming"},
	{Name: "On The Air", Data: "tv/on_the_air"},
}

// listMediaType returns the media type implied by a list path. Trending
// lists carry media_type on every entry instead.
func listMediaType(path string) string {
	switch {
	case strings.HasPrefix(path, "tv/"):
		return mediaTV
	case strings.HasPrefix(path, "movie/"):
		return mediaMovie
	default:
		return ""
	}
}

// Provider adapts a Client to provider.Provider.
type Provider struct {
	client            *Client
	seasonConcurrency int
	log               *slog.Logger
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithSeasonConcurrency bounds how many seasons are fetched at once.
func WithSeasonConcurrency(n int) ProviderOption {
	return func(p *Provider) {
		if n > 0 {
			p.seasonConcurrency = n
		}
	}
}

// NewProvider creates a TMDB content provider.
func NewProvider(client *Client, log *slog.Logger, opts ...ProviderOption) *Provider {
	if log == nil {
		log = slog.Default()
	}
	p := &Provider{client: client, seasonConcurrency: defaultSeasonConcurrency, log: log}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements provider.Provider.
func (p *Provider) Name() string { return Name }

// MainPage implements provider.Provider.
func (p *Provider) MainPage() []provider.MainPageData {
	return slices.Clone(mainPage)
}

// FetchPage implements provider.Provider. The response holds a single list
// named after the request.
func (p *Provider) FetchPage(ctx context.Context, req provider.MainPageRequest, page int) (*provider.HomePageResponse, error) {
	res, err := p.client.List(ctx, req.Data, page)
	if err != nil {
		return nil, err
	}
	fallback := listMediaType(req.Data)
	items := make([]provider.SearchResponse, 0, len(res.Results))
	for _, r := range res.Results {
		if r.MediaType == "" {
			r.MediaType = fallback
		}
		if sr, ok := toSearchResponse(r); ok {
			items = append(items, sr)
		}
	}
	return &provider.HomePageResponse{
		Lists:   []provider.HomePageList{{Name: req.Name, Items: items, Horizontal: req.Horizontal}},
		HasNext: res.Page < res.TotalPages,
	}, nil
}

// Search implements provider.Provider. People are left out.
func (p *Provider) Search(ctx context.Context, query string, page int) ([]provider.SearchResponse, error) {
	res, err := p.client.SearchMulti(ctx, query, page)
	if err != nil {
		return nil, err
	}
	out := make([]provider.SearchResponse, 0, len(res.Results))
	for _, r := range res.Results {
		if sr, ok := toSearchResponse(r); ok {
			out = append(out, sr)
		}
	}
	return out, nil
}

// Load implements provider.Provider for movie and series locators.
func (p *Provider) Load(ctx context.Context, url string) (*provider.LoadResponse, error) {
	loc, err := ParseLocator(url)
	if err != nil {
		return nil, err
	}
	if loc.Type == mediaMovie {
		m, err := p.client.GetMovie(ctx, loc.ID)
		if err != nil {
			return nil, err
		}
		return movieResponse(m), nil
	}

	start := time.Now()
	t, err := p.client.GetTV(ctx, loc.ID)
	if err != nil {
		return nil, err
	}
	seasons, err := p.fetchSeasons(ctx, t)
	if err != nil {
		return nil, err
	}
	p.log.Debug("series loaded", "id", t.ID, "seasons", len(seasons),
		"duration_ms", time.Since(start).Milliseconds())
	return seriesResponse(t, seasons), nil
}

// fetchSeasons loads every numbered season concurrently. Specials
// (season 0) are skipped. Results keep the series' season order.
func (p *Provider) fetchSeasons(ctx context.Context, t *TV) ([]*Season, error) {
	var numbers []int
	for _, s := range t.Seasons {
		if s.SeasonNumber > 0 {
			numbers = append(numbers, s.SeasonNumber)
		}
	}

	seasons := make([]*Season, len(numbers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.seasonConcurrency)
	for i, n := range numbers {
		g.Go(func() error {
			s, err := p.client.GetSeason(ctx, t.ID, n)
			if err != nil {
				return fmt.Errorf("fetch seasons: %w", err)
			}
			seasons[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return seasons, nil
}
