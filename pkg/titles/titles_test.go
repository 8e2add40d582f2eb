package titles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Matrix", "matrix"},
		{"Léon: The Professional", "leon professional"},
		{"Fast & Furious", "fast and furious"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"  A   Quiet   Place ", "quiet place"},
		{"Ocean's Eleven", "oceans eleven"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestSortKey_FallsBackForPunctuation(t *testing.T) {
	assert.Equal(t, "?!", SortKey(" ?! "))
	assert.Equal(t, "amelie", SortKey("Amélie"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "plan to watch", Fold("  Plan To Watch "))
}

func TestClosest(t *testing.T) {
	m := Closest("Popular Movies", []string{"Top Rated", "Popular Movie", "Trending"})
	assert.Equal(t, "Popular Movie", m.Name)
	assert.Greater(t, m.Score, 0.9)
}

func TestClosest_NoCandidates(t *testing.T) {
	assert.Equal(t, Match{}, Closest("anything", nil))
}
