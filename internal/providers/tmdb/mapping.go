package tmdb

import (
	"slices"
	"time"

	"github.com/vmunix/couchtv/pkg/provider"
)

const genreAnimation = 16

func typePtr(t provider.TvType) *provider.TvType { return &t }

func positive(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

func score(avg float64, votes int) *float64 {
	if votes == 0 {
		return nil
	}
	return &avg
}

func toSearchResponse(r SearchResult) (provider.SearchResponse, bool) {
	switch r.MediaType {
	case mediaMovie:
		return provider.SearchResponse{
			Kind:      provider.SearchMovie,
			Name:      r.Title,
			URL:       Locator{ID: r.ID, Type: mediaMovie}.String(),
			APIName:   Name,
			PosterURL: ImageURL(r.PosterPath, posterSize),
			Type:      typePtr(provider.TypeMovie),
			Year:      positive(yearOf(r.ReleaseDate)),
		}, true
	case mediaTV:
		return provider.SearchResponse{
			Kind:      provider.SearchSeries,
			Name:      r.Name,
			URL:       Locator{ID: r.ID, Type: mediaTV}.String(),
			APIName:   Name,
			PosterURL: ImageURL(r.PosterPath, posterSize),
			Type:      typePtr(provider.TypeTvSeries),
			Year:      positive(yearOf(r.FirstAirDate)),
		}, true
	default:
		return provider.SearchResponse{}, false
	}
}

func recommendations(p *Page[SearchResult], fallback string) []provider.SearchResponse {
	if p == nil {
		return nil
	}
	out := make([]provider.SearchResponse, 0, len(p.Results))
	for _, r := range p.Results {
		if r.MediaType == "" {
			r.MediaType = fallback
		}
		if sr, ok := toSearchResponse(r); ok {
			out = append(out, sr)
		}
	}
	return out
}

func actors(c *Credits) []provider.Actor {
	if c == nil {
		return nil
	}
	cast := slices.Clone(c.Cast)
	slices.SortStableFunc(cast, func(a, b CastMember) int { return a.Order - b.Order })
	if len(cast) > maxCast {
		cast = cast[:maxCast]
	}
	out := make([]provider.Actor, 0, len(cast))
	for _, m := range cast {
		out = append(out, provider.Actor{
			Name:     m.Name,
			Role:     m.Character,
			ImageURL: ImageURL(m.ProfilePath, profileSize),
		})
	}
	return out
}

func trailers(v *Videos) []string {
	if v == nil {
		return nil
	}
	var out []string
	for _, video := range v.Results {
		if video.Site == "YouTube" && video.Type == "Trailer" && video.Key != "" {
			out = append(out, "https://www.youtube.com/watch?v="+video.Key)
		}
	}
	return out
}

func genres(gs []Genre) []string {
	out := make([]string, 0, len(gs))
	for _, g := range gs {
		out = append(out, g.Name)
	}
	return out
}

func movieCertification(r *ReleaseDatesResults) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Results {
		if c.Country != certificationCountry {
			continue
		}
		for _, d := range c.ReleaseDates {
			if d.Certification != "" {
				return d.Certification
			}
		}
	}
	return ""
}

func seriesRating(r *ContentRatings) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Results {
		if c.Country == certificationCountry {
			return c.Rating
		}
	}
	return ""
}

func movieResponse(m *Movie) *provider.LoadResponse {
	loc := Locator{ID: m.ID, Type: mediaMovie}.String()
	return &provider.LoadResponse{
		Kind:            provider.LoadMovie,
		Name:            m.Title,
		URL:             loc,
		APIName:         Name,
		Type:            typePtr(provider.TypeMovie),
		PosterURL:       ImageURL(m.PosterPath, posterSize),
		BackgroundURL:   ImageURL(m.BackdropPath, backdropSize),
		Plot:            m.Overview,
		Year:            positive(m.Year()),
		Score:           score(m.VoteAverage, m.VoteCount),
		Tags:            genres(m.Genres),
		Duration:        positive(m.Runtime),
		ReleaseDate:     m.ReleaseDate,
		ContentRating:   movieCertification(m.ReleaseDates),
		Actors:          actors(m.Credits),
		Recommendations: recommendations(m.Recommendations, mediaMovie),
		Trailers:        trailers(m.Videos),
		ComingSoon:      m.Status != "" && m.Status != "Released",
		DataURL:         loc,
	}
}

// seriesType reports Japanese animation as anime; everything else is a
// plain series.
func seriesType(t *TV) provider.TvType {
	animated := slices.ContainsFunc(t.Genres, func(g Genre) bool { return g.ID == genreAnimation })
	if animated && slices.Contains(t.OriginCountry, "JP") {
		return provider.TypeAnime
	}
	return provider.TypeTvSeries
}

func seriesResponse(t *TV, seasons []*Season) *provider.LoadResponse {
	resp := &provider.LoadResponse{
		Kind:            provider.LoadSeries,
		Name:            t.Name,
		URL:             Locator{ID: t.ID, Type: mediaTV}.String(),
		APIName:         Name,
		Type:            typePtr(seriesType(t)),
		PosterURL:       ImageURL(t.PosterPath, posterSize),
		BackgroundURL:   ImageURL(t.BackdropPath, backdropSize),
		Plot:            t.Overview,
		Year:            positive(t.Year()),
		Score:           score(t.VoteAverage, t.VoteCount),
		Tags:            genres(t.Genres),
		ReleaseDate:     t.FirstAirDate,
		ContentRating:   seriesRating(t.ContentRatings),
		Actors:          actors(t.Credits),
		Recommendations: recommendations(t.Recommendations, mediaTV),
		Trailers:        trailers(t.Videos),
		ComingSoon:      comingSoon(t.FirstAirDate),
	}
	if len(t.EpisodeRunTime) > 0 {
		resp.Duration = positive(t.EpisodeRunTime[0])
	}

	for _, s := range t.Seasons {
		if s.SeasonNumber > 0 {
			resp.Seasons = append(resp.Seasons, provider.SeasonData{Season: s.SeasonNumber, Name: s.Name})
		}
	}
	for _, s := range seasons {
		if s == nil {
			continue
		}
		for _, e := range s.Episodes {
			resp.Episodes = append(resp.Episodes, provider.Episode{
				Data: Locator{
					ID: t.ID, Type: mediaTV, Season: positive(e.SeasonNumber), Episode: positive(e.EpisodeNumber),
				}.String(),
				Name:        e.Name,
				Season:      positive(e.SeasonNumber),
				Episode:     positive(e.EpisodeNumber),
				PosterURL:   ImageURL(e.StillPath, stillSize),
				Score:       score(e.VoteAverage, e.VoteCount),
				Description: e.Overview,
				Date:        e.AirDate,
				RunTime:     positive(e.Runtime),
			})
		}
	}
	return resp
}

func comingSoon(firstAirDate string) bool {
	if firstAirDate == "" {
		return false
	}
	d, err := time.Parse(time.DateOnly, firstAirDate)
	if err != nil {
		return false
	}
	return d.After(time.Now())
}
