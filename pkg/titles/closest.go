package titles

import "github.com/hbollon/go-edlib"

// Match is the best candidate found by Closest.
type Match struct {
	Name  string
	Score float64 // Jaro-Winkler similarity, 0.0-1.0
}

// Closest returns the candidate most similar to name after cleaning both
// sides. It returns a zero Match when there are no candidates.
func Closest(name string, candidates []string) Match {
	var best Match
	target := Clean(name)
	for _, c := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(target, Clean(c)))
		if score > best.Score || best.Name == "" {
			best = Match{Name: c, Score: score}
		}
	}
	return best
}
