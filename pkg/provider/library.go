package provider

import "time"

// ListCategory is the structured tag of a sync-provider list.
type ListCategory int

const (
	ListUnknown ListCategory = iota
	ListFavorites
	ListWatching
	ListPlanToWatch
	ListCompleted
	ListOnHold
	ListDropped
)

func (c ListCategory) String() string {
	switch c {
	case ListFavorites:
		return "favorites"
	case ListWatching:
		return "watching"
	case ListPlanToWatch:
		return "plan_to_watch"
	case ListCompleted:
		return "completed"
	case ListOnHold:
		return "on_hold"
	case ListDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// SortMode orders items inside a library list.
type SortMode string

const (
	SortAlphabeticalAZ SortMode = "alphabetical_az"
	SortAlphabeticalZA SortMode = "alphabetical_za"
	SortUpdatedNewest  SortMode = "updated_newest"
	SortUpdatedOldest  SortMode = "updated_oldest"
	SortRatingHigh     SortMode = "rating_high"
	SortRatingLow      SortMode = "rating_low"
	SortReleaseNewest  SortMode = "release_newest"
	SortReleaseOldest  SortMode = "release_oldest"
)

// SortModes lists every sort mode in display order.
var SortModes = []SortMode{
	SortAlphabeticalAZ, SortAlphabeticalZA,
	SortUpdatedNewest, SortUpdatedOldest,
	SortRatingHigh, SortRatingLow,
	SortReleaseNewest, SortReleaseOldest,
}

// LibraryItem is one entry of a sync-provider list.
type LibraryItem struct {
	SearchResponse
	Score       *float64  // 0-10
	LastUpdated time.Time
	Plot        string
}

// LibraryList is one typed list of a sync provider.
type LibraryList struct {
	Name     string
	Category ListCategory
	Items    []LibraryItem
}

// LibraryMetadata is the result of SyncProvider.Library.
type LibraryMetadata struct {
	Lists              []LibraryList
	SupportedSortModes []SortMode
}

// ParseListCategory is the inverse of ListCategory.String. Unknown names
// map to ListUnknown.
func ParseListCategory(s string) ListCategory {
	for c := ListFavorites; c <= ListDropped; c++ {
		if c.String() == s {
			return c
		}
	}
	return ListUnknown
}
