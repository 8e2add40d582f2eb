package tmdb

import (
	"encoding/json"
	"fmt"
)

const (
	mediaMovie = "movie"
	mediaTV    = "tv"
)

// Locator is the url this provider hands out for items and episodes. It is
// a JSON object so the type travels with the id.
type Locator struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Season  *int   `json:"season,omitempty"`
	Episode *int   `json:"episode,omitempty"`
}

func (l Locator) String() string {
	b, _ := json.Marshal(l)
	return string(b)
}

// ParseLocator decodes a locator produced by this provider.
func ParseLocator(s string) (Locator, error) {
	var l Locator
	if err := json.Unmarshal([]byte(s), &l); err != nil {
		return Locator{}, fmt.Errorf("parse locator %q: %w", s, err)
	}
	if l.ID <= 0 || (l.Type != mediaMovie && l.Type != mediaTV) {
		return Locator{}, fmt.Errorf("parse locator %q: unsupported id or type", s)
	}
	return l, nil
}
