package feed

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/couchtv/pkg/provider"
)

// Row is the first page of one home-feed category. Err is set when that
// category failed; other rows are unaffected.
type Row struct {
	Category Category
	Page     Page
	Err      error
}

// LoadHome fetches the first page of every category the provider declares,
// at most homeConcurrency at a time. Rows keep category order. Only context
// cancellation fails the call as a whole.
func (l *Loader) LoadHome(ctx context.Context, p provider.Provider) ([]Row, error) {
	categories := ListCategories(p)
	rows := make([]Row, len(categories))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.homeConcurrency)
	for i, c := range categories {
		g.Go(func() error {
			pg, err := l.LoadPage(gctx, p, c, 1)
			rows[i] = Row{Category: c, Page: pg, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range rows {
		if r.Err != nil {
			failed++
		}
	}
	l.log.Info("home loaded", "provider", p.Name(), "rows", len(rows), "failed", failed,
		"duration_ms", time.Since(start).Milliseconds())
	return rows, nil
}
