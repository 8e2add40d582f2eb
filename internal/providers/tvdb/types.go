package tvdb

import "time"

// Series is a TVDB series record.
type Series struct {
	ID              int
	Name            string
	Year            int // from first aired, 0 when unknown
	FirstAired      string
	Status          string // "Continuing", "Ended", "Upcoming"
	Overview        string
	Image           string
	OriginalCountry string
	AverageRuntime  int
	Score           float64
}

// Episode is one episode of a series in default (aired) order.
type Episode struct {
	ID       int
	Season   int
	Episode  int
	Name     string
	Overview string
	AirDate  time.Time // zero when unknown
	Runtime  int
	Image    string
}

// SearchResult is a series search hit.
type SearchResult struct {
	ID       int
	Name     string
	Year     int
	Status   string
	Overview string
	Network  string
	ImageURL string
}

// envelope is the common shape of every TVDB v4 response.
type envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
	Links  struct {
		Next *string `json:"next"`
	} `json:"links"`
}

type loginData struct {
	Token string `json:"token"`
}

type searchRecord struct {
	ObjectID string `json:"objectID"`
	TVDBID   string `json:"tvdb_id"`
	Name     string `json:"name"`
	Year     string `json:"year"`
	Status   string `json:"status"`
	Overview string `json:"overview"`
	Network  string `json:"network"`
	ImageURL string `json:"image_url"`
}

type seriesRecord struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status struct {
		Name string `json:"name"`
	} `json:"status"`
	Overview        string  `json:"overview"`
	FirstAired      string  `json:"firstAired"` // YYYY-MM-DD
	Image           string  `json:"image"`
	OriginalCountry string  `json:"originalCountry"`
	AverageRuntime  int     `json:"averageRuntime"`
	Score           float64 `json:"score"`
}

type episodeRecord struct {
	ID           int    `json:"id"`
	SeasonNumber int    `json:"seasonNumber"`
	Number       int    `json:"number"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	Aired        string `json:"aired"` // YYYY-MM-DD
	Runtime      int    `json:"runtime"`
	Image        string `json:"image"`
}

type episodesData struct {
	Episodes []episodeRecord `json:"episodes"`
}
