// Package search fans a query out to every content provider and collects
// the results into per-provider sections.
package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mhmtszr/concurrent-swiss-map"
	"github.com/sourcegraph/conc/pool"

	"github.com/vmunix/couchtv/internal/media"
	"github.com/vmunix/couchtv/pkg/provider"
)

const defaultMaxConcurrency = 8

// Section holds one provider's results. ID and Title are the provider name.
type Section struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Items []media.Item `json:"items"`
}

// Providers supplies the current provider roster in enumeration order.
type Providers interface {
	All() []provider.Provider
}

// Searcher runs one query to completion.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Section, error)
}

// SearcherFunc adapts a function to Searcher.
type SearcherFunc func(ctx context.Context, query string) ([]Section, error)

// Search calls f.
func (f SearcherFunc) Search(ctx context.Context, query string) ([]Section, error) {
	return f(ctx, query)
}

// Aggregator searches all providers concurrently.
type Aggregator struct {
	providers      Providers
	maxConcurrency int
	log            *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithMaxConcurrency bounds the number of providers queried at once.
func WithMaxConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.maxConcurrency = n
		}
	}
}

// NewAggregator creates a search aggregator over providers.
func NewAggregator(providers Providers, log *slog.Logger, opts ...Option) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	a := &Aggregator{providers: providers, maxConcurrency: defaultMaxConcurrency, log: log}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Search queries every provider and waits for all of them. A blank query
// returns no sections. A failing provider is left out; providers with no
// results contribute no section. Sections follow provider order. If ctx is
// canceled, no sections are returned.
func (a *Aggregator) Search(ctx context.Context, query string) ([]Section, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}

	providers := a.providers.All()
	a.log.Debug("search started", "query", q, "providers", len(providers))
	start := time.Now()

	results := csmap.Create[string, []media.Item]()
	p := pool.New().WithMaxGoroutines(a.maxConcurrency).WithContext(ctx)
	for _, prov := range providers {
		p.Go(func(ctx context.Context) error {
			providerStart := time.Now()
			rs, err := prov.Search(ctx, q, 1)
			if err != nil {
				a.log.Warn("provider search failed", "provider", prov.Name(), "error", err,
					"duration_ms", time.Since(providerStart).Milliseconds())
				return nil
			}
			a.log.Debug("provider returned", "provider", prov.Name(), "results", len(rs),
				"duration_ms", time.Since(providerStart).Milliseconds())
			if len(rs) > 0 {
				results.Store(prov.Name(), media.NormalizeAll(prov.Name(), rs))
			}
			return nil
		})
	}
	_ = p.Wait()

	if err := ctx.Err(); err != nil {
		a.log.Debug("search canceled", "query", q)
		return nil, err
	}

	sections := make([]Section, 0, results.Count())
	for _, prov := range providers {
		items, ok := results.Load(prov.Name())
		if !ok {
			continue
		}
		sections = append(sections, Section{ID: prov.Name(), Title: prov.Name(), Items: items})
	}

	a.log.Info("search complete", "query", q, "sections", len(sections),
		"providers", len(providers), "duration_ms", time.Since(start).Milliseconds())
	return sections, nil
}
