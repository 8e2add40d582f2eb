package details

import (
	"github.com/vmunix/couchtv/internal/media"
	"github.com/vmunix/couchtv/pkg/provider"
)

// ToDetails maps a provider load response onto MovieDetails. It never
// fails; absent fields resolve to empty values.
func ToDetails(r *provider.LoadResponse) *MovieDetails {
	if r == nil {
		return nil
	}

	d := base(r)
	switch r.Kind {
	case provider.LoadMovie:
		d.Kind = media.KindMovie
		d.PlaybackData = r.DataURL
	case provider.LoadSeries:
		d.Kind = media.KindSeries
		applyEpisodes(d, r.Episodes, r.Seasons, false)
	case provider.LoadAnime:
		d.Kind = media.KindSeries
		d.Name = fallbacks{r.Name, r.EnglishName, r.JapaneseName}.resolve()
		applyEpisodes(d, flattenDubs(r.DubEpisodes), r.Seasons, true)
	default:
		d.Kind = media.KindOther
	}
	return d
}

func base(r *provider.LoadResponse) *MovieDetails {
	d := &MovieDetails{
		ID:              media.ID(r.APIName, r.URL),
		Provider:        r.APIName,
		URL:             r.URL,
		Name:            r.Name,
		Description:     r.Plot,
		PosterURI:       fallbacks{r.PosterURL, r.BackgroundURL}.resolve(),
		BackdropURI:     fallbacks{r.BackgroundURL, r.PosterURL}.resolve(),
		Year:            copyInt(r.Year),
		Rating:          RatingText(r.Score),
		ReleaseDate:     r.ReleaseDate,
		Categories:      nonNil(r.Tags),
		DurationMinutes: RuntimeMinutes(r.Duration),
		ContentRating:   r.ContentRating,
		Trailers:        nonNil(r.Trailers),
		ComingSoon:      r.ComingSoon,
		Seasons:         []TvSeason{},
		Cast:            make([]CastMember, 0, len(r.Actors)),
		Similar:         media.NormalizeAll(r.APIName, r.Recommendations),
	}
	for _, a := range r.Actors {
		d.Cast = append(d.Cast, CastMember{Name: a.Name, Role: a.Role, ImageURI: a.ImageURL})
	}
	return d
}

func applyEpisodes(d *MovieDetails, episodes []provider.Episode, meta []provider.SeasonData, dedupe bool) {
	declared := make([]int, 0, len(meta))
	for _, m := range meta {
		declared = append(declared, m.Season)
	}

	d.Seasons = GroupIntoSeasons(episodes, meta, d.PosterURI, dedupe)
	d.SeasonCount = ExtractSeasonCount(episodes, declared)
	counted := episodes
	if dedupe {
		counted = dedupeEpisodes(episodes)
	}
	d.EpisodeCount = ExtractEpisodeCount(counted)
	d.CurrentSeason, d.CurrentEpisode = FindCurrentEpisode(episodes)
}

// flattenDubs merges the per-track episode lists in a fixed track order so
// the result does not depend on map iteration.
func flattenDubs(buckets map[provider.DubStatus][]provider.Episode) []provider.Episode {
	var out []provider.Episode
	for _, status := range []provider.DubStatus{provider.DubStatusSubbed, provider.DubStatusDubbed, provider.DubStatusNone} {
		out = append(out, buckets[status]...)
	}
	return out
}
