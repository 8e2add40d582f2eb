// Package library turns a sync provider's typed lists into ordered,
// sorted sections.
package library

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/vmunix/couchtv/internal/media"
	"github.com/vmunix/couchtv/pkg/provider"
)

// Section is one library list mapped onto media items.
type Section struct {
	Name     string                `json:"name"`
	Category provider.ListCategory `json:"-"`
	Items    []media.Item          `json:"items"`
}

// Result is the outcome of one library load.
type Result struct {
	Provider       string              `json:"provider"`
	Sort           provider.SortMode   `json:"sort"`
	SupportedSorts []provider.SortMode `json:"supported_sorts"`
	Sections       []Section           `json:"sections"`
}

// Aggregator loads libraries from sync providers.
type Aggregator struct {
	log *slog.Logger
}

// NewAggregator creates a library aggregator.
func NewAggregator(log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	return &Aggregator{log: log}
}

// Load fetches every list from sp in one call, sorts items within each list
// by mode and orders the lists by priority. A mode the provider does not
// support falls back to alphabetical A-Z.
func (a *Aggregator) Load(ctx context.Context, sp provider.SyncProvider, mode provider.SortMode) (*Result, error) {
	start := time.Now()
	meta, err := sp.Library(ctx)
	if err != nil {
		return nil, provider.WrapCall(sp.Name(), "library", err)
	}

	effective := EffectiveSort(mode, meta.SupportedSortModes)
	if effective != mode {
		a.log.Debug("sort mode unsupported, using default", "provider", sp.Name(),
			"requested", string(mode), "using", string(effective))
	}

	sections := make([]Section, 0, len(meta.Lists))
	for _, list := range meta.Lists {
		entries := slices.Clone(list.Items)
		SortItems(entries, effective)

		items := make([]media.Item, 0, len(entries))
		for _, e := range entries {
			r := e.SearchResponse
			if r.APIName == "" {
				r.APIName = sp.Name()
			}
			items = append(items, media.Normalize(r))
		}
		sections = append(sections, Section{Name: list.Name, Category: list.Category, Items: items})
	}
	OrderSections(sections)

	a.log.Info("library loaded", "provider", sp.Name(), "sections", len(sections),
		"sort", string(effective), "duration_ms", time.Since(start).Milliseconds())

	return &Result{
		Provider:       sp.Name(),
		Sort:           effective,
		SupportedSorts: meta.SupportedSortModes,
		Sections:       sections,
	}, nil
}
