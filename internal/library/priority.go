package library

import (
	"slices"

	"github.com/vmunix/couchtv/pkg/provider"
	"github.com/vmunix/couchtv/pkg/titles"
)

const lowestPriority = 3

var prioritySynonyms = map[string]int{
	"favorites":          0,
	"favourites":         0,
	"favorite":           0,
	"favourite":          0,
	"watching":           1,
	"currently watching": 1,
	"plan to watch":      2,
	"plan-to-watch":      2,
	"planned":            2,
	"watchlist":          2,
}

// Priority ranks a section: favorites, then watching, then plan to watch,
// then everything else. The structured category wins over the name.
func Priority(name string, category provider.ListCategory) int {
	switch category {
	case provider.ListFavorites:
		return 0
	case provider.ListWatching:
		return 1
	case provider.ListPlanToWatch:
		return 2
	case provider.ListUnknown:
	default:
		return lowestPriority
	}
	if p, ok := prioritySynonyms[titles.Fold(name)]; ok {
		return p
	}
	return lowestPriority
}

// OrderSections stably reorders sections by Priority.
func OrderSections(sections []Section) {
	slices.SortStableFunc(sections, func(a, b Section) int {
		return Priority(a.Name, a.Category) - Priority(b.Name, b.Category)
	})
}
