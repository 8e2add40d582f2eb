// Package tmdb is a content provider backed by The Movie Database API.
package tmdb

import "strconv"

const imageBaseURL = "https://image.tmdb.org/t/p/"

// Movie represents TMDB movie metadata.
type Movie struct {
	ID           int64   `json:"id"`
	IMDBID       string  `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	Status       string  `json:"status"`       // "Released", "Post Production", ...
	ReleaseDate  string  `json:"release_date"` // "2024-03-01"
	PosterPath   string  `json:"poster_path"`  // "/abc123.jpg"
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Runtime      int     `json:"runtime"` // minutes
	Genres       []Genre `json:"genres"`

	// present when requested with append_to_response
	Credits         *Credits             `json:"credits,omitempty"`
	Videos          *Videos              `json:"videos,omitempty"`
	Recommendations *Page[SearchResult]  `json:"recommendations,omitempty"`
	ReleaseDates    *ReleaseDatesResults `json:"release_dates,omitempty"`
}

// TV represents TMDB series metadata.
type TV struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	OriginalName     string          `json:"original_name"`
	Overview         string          `json:"overview"`
	FirstAirDate     string          `json:"first_air_date"`
	PosterPath       string          `json:"poster_path"`
	BackdropPath     string          `json:"backdrop_path"`
	VoteAverage      float64         `json:"vote_average"`
	VoteCount        int             `json:"vote_count"`
	EpisodeRunTime   []int           `json:"episode_run_time"`
	NumberOfEpisodes int             `json:"number_of_episodes"`
	OriginCountry    []string        `json:"origin_country"`
	Genres           []Genre         `json:"genres"`
	Seasons          []SeasonSummary `json:"seasons"`

	Credits         *Credits            `json:"credits,omitempty"`
	Videos          *Videos             `json:"videos,omitempty"`
	Recommendations *Page[SearchResult] `json:"recommendations,omitempty"`
	ContentRatings  *ContentRatings     `json:"content_ratings,omitempty"`
}

// SeasonSummary is the season stub embedded in a TV response.
type SeasonSummary struct {
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
	PosterPath   string `json:"poster_path"`
}

// Season is a full season with its episodes.
type Season struct {
	ID           int64     `json:"id"`
	SeasonNumber int       `json:"season_number"`
	Name         string    `json:"name"`
	Episodes     []Episode `json:"episodes"`
}

// Episode is one episode of a season.
type Episode struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	SeasonNumber  int     `json:"season_number"`
	EpisodeNumber int     `json:"episode_number"`
	AirDate       string  `json:"air_date"`
	StillPath     string  `json:"still_path"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
}

// Genre represents a genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credits holds the cast of a title.
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// CastMember is one credited actor.
type CastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// Videos holds trailers and clips.
type Videos struct {
	Results []Video `json:"results"`
}

// Video is one hosted video.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"` // "YouTube", "Vimeo"
	Type string `json:"type"` // "Trailer", "Teaser", "Clip"
}

// ReleaseDatesResults holds per-country movie certifications.
type ReleaseDatesResults struct {
	Results []struct {
		Country      string `json:"iso_3166_1"`
		ReleaseDates []struct {
			Certification string `json:"certification"`
		} `json:"release_dates"`
	} `json:"results"`
}

// ContentRatings holds per-country series ratings.
type ContentRatings struct {
	Results []struct {
		Country string `json:"iso_3166_1"`
		Rating  string `json:"rating"`
	} `json:"results"`
}

// SearchResult is an entry of a search or list endpoint. Movies carry
// Title and ReleaseDate, series carry Name and FirstAirDate.
type SearchResult struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type,omitempty"` // "movie", "tv", "person"
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
}

// Page is a paginated TMDB response.
type Page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// Year extracts the year from ReleaseDate.
func (m *Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

// Year extracts the year from FirstAirDate.
func (t *TV) Year() int {
	return yearOf(t.FirstAirDate)
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// ImageURL returns the full image URL for a TMDB path.
// Size can be: w92, w154, w185, w342, w500, w780, original
func ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + size + path
}
