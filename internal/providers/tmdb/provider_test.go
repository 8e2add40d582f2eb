package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/couchtv/internal/details"
	"github.com/vmunix/couchtv/internal/media"
	"github.com/vmunix/couchtv/pkg/provider"
)

var _ provider.Provider = (*Provider)(nil)

func tmdbAPI(t *testing.T, seasonCalls *atomic.Int32) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/3/movie/603", func(w http.ResponseWriter, r *http.Request) {
		m := Movie{
			ID: 603, Title: "The Matrix", Status: "Released", ReleaseDate: "1999-03-30",
			Overview: "A hacker learns the truth.", PosterPath: "/p.jpg", BackdropPath: "/b.jpg",
			VoteAverage: 8.2, VoteCount: 20000, Runtime: 136,
		}
		m.Genres = []Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}}
		m.Credits = &Credits{Cast: []CastMember{{Name: "Carrie-Anne Moss", Order: 2}, {Name: "Keanu Reeves", Character: "Neo", Order: 0}}}
		m.Videos = &Videos{Results: []Video{{Key: "abc", Site: "YouTube", Type: "Trailer"}, {Key: "x", Site: "YouTube", Type: "Clip"}}}
		m.Recommendations = &Page[SearchResult]{Results: []SearchResult{
			{ID: 604, Title: "The Matrix Reloaded", ReleaseDate: "2003-05-15"},
		}}
		writeJSON(w, m)
	})
	mux.HandleFunc("/3/tv/1399", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, TV{
			ID: 1399, Name: "Game of Thrones", FirstAirDate: "2011-04-17", VoteAverage: 8.4, VoteCount: 1,
			EpisodeRunTime: []int{60},
			Seasons: []SeasonSummary{
				{SeasonNumber: 0, Name: "Specials"},
				{SeasonNumber: 1, Name: "Season 1"},
				{SeasonNumber: 2, Name: "Season 2"},
			},
		})
	})
	mux.HandleFunc("/3/tv/1399/season/", func(w http.ResponseWriter, r *http.Request) {
		seasonCalls.Add(1)
		var n int
		_, err := fmt.Sscanf(r.URL.Path, "/3/tv/1399/season/%d", &n)
		assert.NoError(t, err)
		if n == 0 {
			t.Errorf("specials should not be fetched")
		}
		writeJSON(w, Season{SeasonNumber: n, Episodes: []Episode{
			{Name: fmt.Sprintf("S%dE1", n), SeasonNumber: n, EpisodeNumber: 1, Runtime: 58},
			{Name: fmt.Sprintf("S%dE2", n), SeasonNumber: n, EpisodeNumber: 2},
		}})
	})
	mux.HandleFunc("/3/search/multi", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "matrix", r.URL.Query().Get("query"))
		writeJSON(w, Page[SearchResult]{Page: 1, TotalPages: 1, Results: []SearchResult{
			{ID: 603, MediaType: "movie", Title: "The Matrix", ReleaseDate: "1999-03-30"},
			{ID: 6384, MediaType: "person", Name: "Keanu Reeves"},
			{ID: 1399, MediaType: "tv", Name: "Matrix Show"},
		}})
	})
	mux.HandleFunc("/3/tv/popular", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, Page[SearchResult]{Page: 1, TotalPages: 3, Results: []SearchResult{
			{ID: 1399, Name: "Game of Thrones", FirstAirDate: "2011-04-17"},
		}})
	})
	return mux
}

func newTestProvider(t *testing.T, seasonCalls *atomic.Int32) *Provider {
	client := newTestClient(t, tmdbAPI(t, seasonCalls))
	return NewProvider(client, testLogger(), WithSeasonConcurrency(2))
}

func TestProvider_LoadMovie(t *testing.T) {
	p := newTestProvider(t, &atomic.Int32{})

	resp, err := p.Load(context.Background(), `{"id":603,"type":"movie"}`)
	require.NoError(t, err)
	assert.Equal(t, provider.LoadMovie, resp.Kind)
	assert.Equal(t, "The Matrix", resp.Name)
	assert.Equal(t, Name, resp.APIName)
	assert.Equal(t, 1999, *resp.Year)
	assert.Equal(t, 136, *resp.Duration)
	assert.Equal(t, []string{"Action", "Science Fiction"}, resp.Tags)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/p.jpg", resp.PosterURL)
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=abc"}, resp.Trailers)
	assert.False(t, resp.ComingSoon)
	require.Len(t, resp.Actors, 2)
	assert.Equal(t, "Keanu Reeves", resp.Actors[0].Name)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, `{"id":604,"type":"movie"}`, resp.Recommendations[0].URL)
	assert.Equal(t, resp.URL, resp.DataURL)

	d := details.ToDetails(resp)
	assert.Equal(t, media.KindMovie, d.Kind)
	assert.Equal(t, "8.2", d.Rating)
	assert.Equal(t, 136, *d.DurationMinutes)
}

func TestProvider_LoadSeries(t *testing.T) {
	var seasonCalls atomic.Int32
	p := newTestProvider(t, &seasonCalls)

	resp, err := p.Load(context.Background(), `{"id":1399,"type":"tv"}`)
	require.NoError(t, err)
	assert.Equal(t, int32(2), seasonCalls.Load())
	assert.Equal(t, provider.LoadSeries, resp.Kind)
	require.Len(t, resp.Episodes, 4)
	assert.Equal(t, "S1E1", resp.Episodes[0].Name)
	assert.Equal(t, "S2E2", resp.Episodes[3].Name)
	assert.Equal(t, `{"id":1399,"type":"tv","season":2,"episode":2}`, resp.Episodes[3].Data)
	assert.Len(t, resp.Seasons, 2)

	d := details.ToDetails(resp)
	assert.Equal(t, media.KindSeries, d.Kind)
	require.Len(t, d.Seasons, 2)
	assert.Equal(t, 2, *d.SeasonCount)
	assert.Equal(t, 4, *d.EpisodeCount)
	assert.Equal(t, 1, *d.CurrentSeason)
	assert.Equal(t, 1, *d.CurrentEpisode)
}

func TestProvider_LoadBadLocator(t *testing.T) {
	p := newTestProvider(t, &atomic.Int32{})
	_, err := p.Load(context.Background(), "/movie/603")
	assert.Error(t, err)
}

func TestProvider_Search(t *testing.T) {
	p := newTestProvider(t, &atomic.Int32{})

	results, err := p.Search(context.Background(), "matrix", 1)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, provider.SearchMovie, results[0].Kind)
	assert.Equal(t, provider.SearchSeries, results[1].Kind)

	items := media.NormalizeAll(p.Name(), results)
	assert.Equal(t, media.KindMovie, items[0].Kind)
	assert.Equal(t, media.KindSeries, items[1].Kind)
	assert.Nil(t, items[1].Year)
}

func TestProvider_FetchPage(t *testing.T) {
	p := newTestProvider(t, &atomic.Int32{})

	var req provider.MainPageRequest
	for _, c := range p.MainPage() {
		if c.Data == "tv/popular" {
			req = c.Request()
		}
	}
	require.NotEmpty(t, req.Name)

	resp, err := p.FetchPage(context.Background(), req, 1)
	require.NoError(t, err)
	assert.True(t, resp.HasNext)
	require.Len(t, resp.Lists, 1)
	assert.Equal(t, req.Name, resp.Lists[0].Name)
	require.Len(t, resp.Lists[0].Items, 1)
	assert.Equal(t, provider.SearchSeries, resp.Lists[0].Items[0].Kind)
	assert.Equal(t, 2011, *resp.Lists[0].Items[0].Year)
}
