// Package media defines the canonical on-screen media model and normalizes
// provider search records into it.
package media

import (
	"time"

	"github.com/vmunix/couchtv/pkg/provider"
)

// Kind is the variant of an Item.
type Kind int

const (
	KindOther Kind = iota
	KindMovie
	KindSeries
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindSeries:
		return "series"
	default:
		return "other"
	}
}

// MarshalText lets Kind render by name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Item is a browsable media entry. Items are built fresh by Normalize and
// never mutated afterwards.
type Item struct {
	Kind      Kind             `json:"kind"`
	ID        string           `json:"id"`
	URL       string           `json:"url"`
	Provider  string           `json:"provider"`
	Name      string           `json:"name"`
	PosterURI string           `json:"poster_uri"`
	Type      *provider.TvType `json:"type,omitempty"`

	// movie, series
	Year *int `json:"year,omitempty"`

	// series
	EpisodeCount *int `json:"episode_count,omitempty"`

	Resume *Resume `json:"resume,omitempty"`
}

// Resume holds the continue-watching state of an item.
type Resume struct {
	Progress    *float64      `json:"progress,omitempty"` // 0-1
	Remaining   time.Duration `json:"remaining"`
	Season      *int          `json:"season,omitempty"`
	Episode     *int          `json:"episode,omitempty"`
	HasBackdrop bool          `json:"has_backdrop"`
}
