package details

import (
	"strconv"
	"strings"
)

const (
	minPlausibleMinutes = 5
	maxPlausibleMinutes = 240
)

// RuntimeMinutes normalizes a raw provider runtime. Values in [5, 240] are
// already minutes; any other positive value is seconds, rounded up.
func RuntimeMinutes(raw *int) *int {
	if raw == nil || *raw <= 0 {
		return nil
	}
	v := *raw
	if v >= minPlausibleMinutes && v <= maxPlausibleMinutes {
		return &v
	}
	m := (v + 59) / 60
	return &m
}

// RatingText formats a 0-10 score with one decimal and trailing zeros
// trimmed ("7.50" -> "7.5", "8.0" -> "8"). A nil score yields "".
func RatingText(score *float64) string {
	if score == nil {
		return ""
	}
	s := min(max(*score, 0), 10)
	text := strconv.FormatFloat(s, 'f', 1, 64)
	if strings.Contains(text, ".") {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}
	return strings.TrimSpace(text)
}
