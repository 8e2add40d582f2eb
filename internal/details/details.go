// Package details aggregates provider load responses into a uniform
// details model with ordered seasons and episodes.
package details

import "github.com/vmunix/couchtv/internal/media"

// MovieDetails is the full metadata of one title, whatever its kind.
type MovieDetails struct {
	ID              string       `json:"id"`
	Kind            media.Kind   `json:"kind"`
	Provider        string       `json:"provider"`
	URL             string       `json:"url"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	PosterURI       string       `json:"poster_uri"`
	BackdropURI     string       `json:"backdrop_uri"`
	Year            *int         `json:"year,omitempty"`
	Rating          string       `json:"rating"` // empty when unrated
	ReleaseDate     string       `json:"release_date"`
	Categories      []string     `json:"categories"`
	DurationMinutes *int         `json:"duration_minutes,omitempty"`
	ContentRating   string       `json:"content_rating"`
	Trailers        []string     `json:"trailers"`
	ComingSoon      bool         `json:"coming_soon"`
	PlaybackData    string       `json:"playback_data,omitempty"` // movies only
	Seasons         []TvSeason   `json:"seasons"`
	SeasonCount     *int         `json:"season_count,omitempty"`
	EpisodeCount    *int         `json:"episode_count,omitempty"`
	CurrentSeason   *int         `json:"current_season,omitempty"`
	CurrentEpisode  *int         `json:"current_episode,omitempty"`
	Cast            []CastMember `json:"cast"`
	Similar         []media.Item `json:"similar"`
}

// TvSeason is one season with its episodes in display order.
type TvSeason struct {
	Number        int         `json:"number"`
	DisplayNumber *int        `json:"display_number,omitempty"`
	Name          string      `json:"name"`
	Episodes      []TvEpisode `json:"episodes"`
}

// TvEpisode is one playable episode.
type TvEpisode struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Season         int    `json:"season"`
	Number         *int   `json:"number,omitempty"`
	Description    string `json:"description"`
	PosterURI      string `json:"poster_uri"`
	AirDate        string `json:"air_date"`
	RuntimeMinutes *int   `json:"runtime_minutes,omitempty"`
	Rating         string `json:"rating"`
	Data           string `json:"data"`
}

// CastMember is one credited person.
type CastMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	ImageURI string `json:"image_uri"`
}
