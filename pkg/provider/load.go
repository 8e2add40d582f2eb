package provider

// LoadKind is the concrete shape of a LoadResponse.
type LoadKind int

const (
	LoadOther LoadKind = iota
	LoadMovie
	LoadSeries
	LoadAnime
)

func (k LoadKind) String() string {
	switch k {
	case LoadMovie:
		return "movie"
	case LoadSeries:
		return "series"
	case LoadAnime:
		return "anime"
	default:
		return "other"
	}
}

// LoadResponse is the full metadata a provider returns for one title.
type LoadResponse struct {
	Kind            LoadKind         `json:"kind"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	APIName         string           `json:"api_name"`
	Type            *TvType          `json:"type,omitempty"`
	PosterURL       string           `json:"poster_url,omitempty"`
	BackgroundURL   string           `json:"background_url,omitempty"`
	Plot            string           `json:"plot,omitempty"`
	Year            *int             `json:"year,omitempty"`
	Score           *float64         `json:"score,omitempty"` // 0-10
	Tags            []string         `json:"tags,omitempty"`
	Duration        *int             `json:"duration,omitempty"` // raw runtime
	ReleaseDate     string           `json:"release_date,omitempty"`
	ContentRating   string           `json:"content_rating,omitempty"`
	Actors          []Actor          `json:"actors,omitempty"`
	Recommendations []SearchResponse `json:"recommendations,omitempty"`
	Trailers        []string         `json:"trailers,omitempty"`
	ComingSoon      bool             `json:"coming_soon,omitempty"`

	// movie
	DataURL string `json:"data_url,omitempty"`

	// series
	Episodes []Episode `json:"episodes,omitempty"`

	// anime
	DubEpisodes  map[DubStatus][]Episode `json:"dub_episodes,omitempty"`
	EnglishName  string                  `json:"english_name,omitempty"`
	JapaneseName string                  `json:"japanese_name,omitempty"`

	// series, anime
	Seasons []SeasonData `json:"seasons,omitempty"`
}

// Episode is a raw provider episode.
type Episode struct {
	Data        string   `json:"data"` // opaque playback locator
	Name        string   `json:"name,omitempty"`
	Season      *int     `json:"season,omitempty"`
	Episode     *int     `json:"episode,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Score       *float64 `json:"score,omitempty"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"`
	RunTime     *int     `json:"run_time,omitempty"`
}

// SeasonData is provider-declared season metadata.
type SeasonData struct {
	Season        int    `json:"season"`
	Name          string `json:"name,omitempty"`
	DisplaySeason *int   `json:"display_season,omitempty"`
}
