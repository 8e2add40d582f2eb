package provider

import "time"

// SearchKind is the concrete shape of a SearchResponse.
type SearchKind int

const (
	SearchGeneric SearchKind = iota // unrecognized shape
	SearchMovie
	SearchSeries
	SearchAnime
	SearchLive
	SearchTorrent
	SearchResume
)

func (k SearchKind) String() string {
	switch k {
	case SearchMovie:
		return "movie"
	case SearchSeries:
		return "series"
	case SearchAnime:
		return "anime"
	case SearchLive:
		return "live"
	case SearchTorrent:
		return "torrent"
	case SearchResume:
		return "resume"
	default:
		return "generic"
	}
}

// SearchResponse is a provider search or listing record. Kind selects which
// of the variant fields are meaningful; the rest are left zero.
type SearchResponse struct {
	Kind      SearchKind `json:"kind"`
	Name      string     `json:"name"`
	URL       string     `json:"url"`
	APIName   string     `json:"api_name"`
	PosterURL string     `json:"poster_url,omitempty"`
	Type      *TvType    `json:"type,omitempty"`

	// movie, series, anime
	Year *int `json:"year,omitempty"`

	// series
	EpisodeCount *int `json:"episode_count,omitempty"`

	// anime: episode count per language track
	DubEpisodes map[DubStatus]int `json:"dub_episodes,omitempty"`

	// resume
	BackdropURL string        `json:"backdrop_url,omitempty"`
	Position    time.Duration `json:"position,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	Season      *int          `json:"season,omitempty"`
	Episode     *int          `json:"episode,omitempty"`
}

// ParseSearchKind is the inverse of SearchKind.String. Unknown names map
// to SearchGeneric.
func ParseSearchKind(s string) SearchKind {
	for k := SearchMovie; k <= SearchResume; k++ {
		if k.String() == s {
			return k
		}
	}
	return SearchGeneric
}
