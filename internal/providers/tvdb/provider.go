package tvdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/couchtv/pkg/provider"
)

// Name is the provider name stamped on every item.
const Name = "tvdb"

const typeSeries = "series"

// Locator is the url this provider hands out for series and episodes.
type Locator struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Season  *int   `json:"season,omitempty"`
	Episode *int   `json:"episode,omitempty"`
}

func (l Locator) String() string {
	b, _ := json.Marshal(l)
	return string(b)
}

// ParseLocator decodes a series locator.
func ParseLocator(s string) (Locator, error) {
	var l Locator
	if err := json.Unmarshal([]byte(s), &l); err != nil {
		return Locator{}, fmt.Errorf("parse locator %q: %w", s, err)
	}
	if l.ID <= 0 || l.Type != typeSeries {
		return Locator{}, fmt.Errorf("parse locator %q: unsupported id or type", s)
	}
	return l, nil
}

// Provider adapts a Client to provider.Provider. TVDB has no curated
// lists, so the provider declares no home feed categories and only takes
// part in search and details.
type Provider struct {
	client *Client
	log    *slog.Logger
}

// NewProvider creates a TVDB content provider.
func NewProvider(client *Client, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.Default()
	}
	return &Provider{client: client, log: log}
}

// Name implements provider.Provider.
func (p *Provider) Name() string { return Name }

// MainPage implements provider.Provider.
func (p *Provider) MainPage() []provider.MainPageData { return nil }

// FetchPage implements provider.Provider. No category is declared, so the
// response is always empty.
func (p *Provider) FetchPage(ctx context.Context, req provider.MainPageRequest, page int) (*provider.HomePageResponse, error) {
	return &provider.HomePageResponse{}, nil
}

// Search implements provider.Provider. TVDB returns a single page.
func (p *Provider) Search(ctx context.Context, query string, page int) ([]provider.SearchResponse, error) {
	if page > 1 {
		return nil, nil
	}
	results, err := p.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]provider.SearchResponse, 0, len(results))
	for _, r := range results {
		out = append(out, provider.SearchResponse{
			Kind:      provider.SearchSeries,
			Name:      r.Name,
			URL:       Locator{ID: r.ID, Type: typeSeries}.String(),
			APIName:   Name,
			PosterURL: r.ImageURL,
			Type:      typePtr(provider.TypeTvSeries),
			Year:      positive(r.Year),
		})
	}
	return out, nil
}

// Load implements provider.Provider. Series metadata and episodes are
// fetched concurrently.
func (p *Provider) Load(ctx context.Context, url string) (*provider.LoadResponse, error) {
	loc, err := ParseLocator(url)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		series   *Series
		episodes []Episode
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		series, err = p.client.GetSeries(gctx, loc.ID)
		return err
	})
	g.Go(func() error {
		var err error
		episodes, err = p.client.GetEpisodes(gctx, loc.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.log.Debug("series loaded", "id", loc.ID, "episodes", len(episodes),
		"duration_ms", time.Since(start).Milliseconds())
	return seriesResponse(series, episodes), nil
}

func typePtr(t provider.TvType) *provider.TvType { return &t }

func positive(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

// seriesType reports anime for Japanese series. TVDB's base record carries
// no genres, so origin is the only signal.
func seriesType(s *Series) provider.TvType {
	if strings.EqualFold(s.OriginalCountry, "jpn") {
		return provider.TypeAnime
	}
	return provider.TypeTvSeries
}

// seriesResponse maps a series and its episodes. Specials (season 0) are
// left out.
func seriesResponse(s *Series, episodes []Episode) *provider.LoadResponse {
	url := Locator{ID: s.ID, Type: typeSeries}.String()
	resp := &provider.LoadResponse{
		Kind:        provider.LoadSeries,
		Name:        s.Name,
		URL:         url,
		APIName:     Name,
		Type:        typePtr(seriesType(s)),
		PosterURL:   s.Image,
		Plot:        s.Overview,
		Year:        positive(s.Year),
		Duration:    positive(s.AverageRuntime),
		ReleaseDate: s.FirstAired,
		ComingSoon:  s.Status == "Upcoming",
	}

	seen := make(map[int]bool)
	for _, ep := range episodes {
		if ep.Season <= 0 {
			continue
		}
		season, number := ep.Season, ep.Episode
		e := provider.Episode{
			Data:        Locator{ID: s.ID, Type: typeSeries, Season: &season, Episode: &number}.String(),
			Name:        ep.Name,
			Season:      &season,
			Episode:     positive(number),
			PosterURL:   ep.Image,
			Description: ep.Overview,
			RunTime:     positive(ep.Runtime),
		}
		if !ep.AirDate.IsZero() {
			e.Date = ep.AirDate.Format(time.DateOnly)
		}
		resp.Episodes = append(resp.Episodes, e)

		if !seen[season] {
			seen[season] = true
			resp.Seasons = append(resp.Seasons, provider.SeasonData{
				Season: season,
				Name:   fmt.Sprintf("Season %d", season),
			})
		}
	}
	return resp
}
