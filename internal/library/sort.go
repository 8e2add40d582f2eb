package library

import (
	"cmp"
	"slices"

	"github.com/vmunix/couchtv/pkg/provider"
	"github.com/vmunix/couchtv/pkg/titles"
)

// DefaultSort is used when the requested mode is not supported.
const DefaultSort = provider.SortAlphabeticalAZ

// EffectiveSort returns mode if supported lists it, otherwise DefaultSort.
func EffectiveSort(mode provider.SortMode, supported []provider.SortMode) provider.SortMode {
	if slices.Contains(supported, mode) {
		return mode
	}
	return DefaultSort
}

// SortItems orders items in place. Items missing the sort field go last;
// ties fall back to title order. The sort is stable.
func SortItems(items []provider.LibraryItem, mode provider.SortMode) {
	var fn func(a, b provider.LibraryItem) int
	switch mode {
	case provider.SortAlphabeticalZA:
		fn = func(a, b provider.LibraryItem) int { return -byTitle(a, b) }
	case provider.SortUpdatedNewest:
		fn = func(a, b provider.LibraryItem) int { return b.LastUpdated.Compare(a.LastUpdated) }
	case provider.SortUpdatedOldest:
		fn = func(a, b provider.LibraryItem) int { return a.LastUpdated.Compare(b.LastUpdated) }
	case provider.SortRatingHigh:
		fn = func(a, b provider.LibraryItem) int { return missingLast(a.Score, b.Score, true) }
	case provider.SortRatingLow:
		fn = func(a, b provider.LibraryItem) int { return missingLast(a.Score, b.Score, false) }
	case provider.SortReleaseNewest:
		fn = func(a, b provider.LibraryItem) int { return missingLast(a.Year, b.Year, true) }
	case provider.SortReleaseOldest:
		fn = func(a, b provider.LibraryItem) int { return missingLast(a.Year, b.Year, false) }
	default:
		fn = byTitle
	}

	slices.SortStableFunc(items, func(a, b provider.LibraryItem) int {
		if c := fn(a, b); c != 0 {
			return c
		}
		return byTitle(a, b)
	})
}

func byTitle(a, b provider.LibraryItem) int {
	return cmp.Compare(titles.SortKey(a.Name), titles.SortKey(b.Name))
}

func missingLast[T cmp.Ordered](a, b *T, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case desc:
		return cmp.Compare(*b, *a)
	default:
		return cmp.Compare(*a, *b)
	}
}
