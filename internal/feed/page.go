package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/couchtv/internal/media"
	"github.com/vmunix/couchtv/pkg/provider"
	"github.com/vmunix/couchtv/pkg/titles"
)

const defaultHomeConcurrency = 4

// Page is one page of a category. PrevKey is nil on the first page and
// NextKey is nil once a page comes back empty.
type Page struct {
	Number  int          `json:"number"`
	Items   []media.Item `json:"items"`
	PrevKey *int         `json:"prev_key"`
	NextKey *int         `json:"next_key"`
}

// Loader pages through provider categories.
type Loader struct {
	log             *slog.Logger
	homeConcurrency int
}

// Option configures a Loader.
type Option func(*Loader)

// WithHomeConcurrency bounds the number of rows LoadHome fetches at once.
func WithHomeConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.homeConcurrency = n
		}
	}
}

// NewLoader creates a feed loader.
func NewLoader(log *slog.Logger, opts ...Option) *Loader {
	if log == nil {
		log = slog.Default()
	}
	l := &Loader{log: log, homeConcurrency: defaultHomeConcurrency}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadPage fetches one page of a category. A provider response without a
// list named like the category yields an empty page, not an error. Provider
// failures are returned as *provider.CallError and are not retried.
func (l *Loader) LoadPage(ctx context.Context, p provider.Provider, c Category, page int) (Page, error) {
	if c.Request == nil {
		return Page{}, fmt.Errorf("load %q: %w", c.Name, ErrNoPageRequest)
	}
	if page < 1 {
		return Page{}, fmt.Errorf("load %q page %d: %w", c.Name, page, ErrInvalidPage)
	}

	start := time.Now()
	resp, err := p.FetchPage(ctx, *c.Request, page)
	if err != nil {
		l.log.Warn("page fetch failed", "provider", p.Name(), "category", c.Name, "page", page, "error", err)
		return Page{}, provider.WrapCall(p.Name(), "fetch page", err)
	}

	var items []media.Item
	if list, ok := findList(resp, c.Name); ok {
		items = media.NormalizeAll(p.Name(), list.Items)
	} else {
		l.logMissingList(p.Name(), c.Name, resp)
		items = []media.Item{}
	}

	l.log.Debug("page loaded", "provider", p.Name(), "category", c.Name, "page", page,
		"items", len(items), "duration_ms", time.Since(start).Milliseconds())
	return newPage(page, items), nil
}

// Walk calls fn for every page of c starting at page 1 until a page comes
// back empty or maxPages pages were visited (maxPages <= 0 means no cap).
func (l *Loader) Walk(ctx context.Context, p provider.Provider, c Category, maxPages int, fn func(Page) error) error {
	for page := 1; maxPages <= 0 || page <= maxPages; {
		pg, err := l.LoadPage(ctx, p, c, page)
		if err != nil {
			return err
		}
		if err := fn(pg); err != nil {
			return err
		}
		if pg.NextKey == nil {
			return nil
		}
		page = *pg.NextKey
	}
	return nil
}

func newPage(number int, items []media.Item) Page {
	pg := Page{Number: number, Items: items}
	if number > 1 {
		prev := number - 1
		pg.PrevKey = &prev
	}
	if len(items) > 0 {
		next := number + 1
		pg.NextKey = &next
	}
	return pg
}

func findList(resp *provider.HomePageResponse, name string) (provider.HomePageList, bool) {
	if resp == nil {
		return provider.HomePageList{}, false
	}
	for _, list := range resp.Lists {
		if list.Name == name {
			return list, true
		}
	}
	return provider.HomePageList{}, false
}

// logMissingList records provider inconsistencies that would otherwise be
// invisible behind an empty page.
func (l *Loader) logMissingList(providerName, category string, resp *provider.HomePageResponse) {
	var names []string
	if resp != nil {
		for _, list := range resp.Lists {
			names = append(names, list.Name)
		}
	}
	attrs := []any{"provider", providerName, "category", category, "lists", len(names)}
	if m := titles.Closest(category, names); m.Name != "" {
		attrs = append(attrs, "closest", m.Name, "similarity", m.Score)
	}
	l.log.Warn("category not found in provider response", attrs...)
}
