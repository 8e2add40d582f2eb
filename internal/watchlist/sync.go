package watchlist

import (
	"context"

	"github.com/vmunix/couchtv/pkg/provider"
)

// ProviderName is the sync-provider name of the local watchlist.
const ProviderName = "local"

// Name implements provider.SyncProvider.
func (s *Store) Name() string { return ProviderName }

// Library implements provider.SyncProvider. Lists appear in the order their
// first entry was added; the local store supports every sort mode.
func (s *Store) Library(ctx context.Context) (*provider.LibraryMetadata, error) {
	entries, err := s.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	var lists []provider.LibraryList
	index := make(map[string]int)
	for _, e := range entries {
		i, ok := index[e.List]
		if !ok {
			i = len(lists)
			index[e.List] = i
			lists = append(lists, provider.LibraryList{Name: e.List, Category: e.Category})
		}
		lists[i].Items = append(lists[i].Items, e.libraryItem())
	}

	return &provider.LibraryMetadata{
		Lists:              lists,
		SupportedSortModes: provider.SortModes,
	}, nil
}

func (e *Entry) libraryItem() provider.LibraryItem {
	return provider.LibraryItem{
		SearchResponse: provider.SearchResponse{
			Kind:         e.Kind,
			Name:         e.Name,
			URL:          e.URL,
			APIName:      e.Provider,
			PosterURL:    e.PosterURL,
			Year:         e.Year,
			EpisodeCount: e.EpisodeCount,
		},
		Score:       e.Score,
		LastUpdated: e.UpdatedAt,
		Plot:        e.Plot,
	}
}

// EntryFor builds an unsaved entry for a provider search record.
func EntryFor(list string, category provider.ListCategory, r provider.SearchResponse) *Entry {
	return &Entry{
		List:         list,
		Category:     category,
		Provider:     r.APIName,
		URL:          r.URL,
		Name:         r.Name,
		Kind:         r.Kind,
		PosterURL:    r.PosterURL,
		Year:         r.Year,
		EpisodeCount: r.EpisodeCount,
	}
}
