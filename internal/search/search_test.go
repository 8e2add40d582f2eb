package search_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/couchtv/internal/media"
	"github.com/vmunix/couchtv/internal/search"
	"github.com/vmunix/couchtv/pkg/provider"
	"github.com/vmunix/couchtv/pkg/provider/mocks"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type roster []provider.Provider

func (r roster) All() []provider.Provider { return r }

func namedProvider(ctrl *gomock.Controller, name string) *mocks.MockProvider {
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return(name).AnyTimes()
	return p
}

func hits(names ...string) []provider.SearchResponse {
	out := make([]provider.SearchResponse, 0, len(names))
	for _, n := range names {
		out = append(out, provider.SearchResponse{Kind: provider.SearchMovie, Name: n, URL: "/" + n})
	}
	return out
}

func TestAggregator_SectionsInProviderOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	alpha := namedProvider(ctrl, "alpha")
	beta := namedProvider(ctrl, "beta")
	gamma := namedProvider(ctrl, "gamma")

	// beta answers first but must still come second
	alpha.EXPECT().Search(gomock.Any(), "matrix", 1).DoAndReturn(
		func(context.Context, string, int) ([]provider.SearchResponse, error) {
			time.Sleep(20 * time.Millisecond)
			return hits("The Matrix"), nil
		})
	beta.EXPECT().Search(gomock.Any(), "matrix", 1).Return(hits("Matrix Reloaded", "Matrix Revolutions"), nil)
	gamma.EXPECT().Search(gomock.Any(), "matrix", 1).Return(hits("Animatrix"), nil)

	agg := search.NewAggregator(roster{alpha, beta, gamma}, testLogger())
	sections, err := agg.Search(context.Background(), "  matrix ")
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Equal(t, "alpha", sections[0].ID)
	assert.Equal(t, "alpha", sections[0].Title)
	assert.Equal(t, "beta", sections[1].ID)
	assert.Len(t, sections[1].Items, 2)
	assert.Equal(t, "gamma", sections[2].ID)
	assert.Equal(t, media.ID("beta", "/Matrix Reloaded"), sections[1].Items[0].ID)
}

func TestAggregator_OmitsFailedAndEmptyProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	ok := namedProvider(ctrl, "ok")
	broken := namedProvider(ctrl, "broken")
	empty := namedProvider(ctrl, "empty")

	ok.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(hits("Heat"), nil)
	broken.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	empty.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	sections, err := search.NewAggregator(roster{broken, empty, ok}, testLogger()).Search(context.Background(), "heat")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "ok", sections[0].ID)
}

func TestAggregator_BlankQueryIsIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := namedProvider(ctrl, "p")

	sections, err := search.NewAggregator(roster{p}, testLogger()).Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, sections)
}

func TestAggregator_BoundedConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	var inFlight, peak atomic.Int32

	var providers roster
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		p := namedProvider(ctrl, name)
		p.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, string, int) ([]provider.SearchResponse, error) {
				n := inFlight.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
				return hits("x"), nil
			})
		providers = append(providers, p)
	}

	sections, err := search.NewAggregator(providers, testLogger(), search.WithMaxConcurrency(2)).
		Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Len(t, sections, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestAggregator_CanceledReturnsNoSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := namedProvider(ctrl, "p")
	ctx, cancel := context.WithCancel(context.Background())
	p.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string, int) ([]provider.SearchResponse, error) {
			cancel()
			return hits("late"), nil
		})

	sections, err := search.NewAggregator(roster{p}, testLogger()).Search(ctx, "q")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, sections)
}
