package metadata

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/couchtv/internal/media"
	"github.com/vmunix/couchtv/pkg/provider"
	"github.com/vmunix/couchtv/pkg/provider/mocks"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

func seriesResponse() *provider.LoadResponse {
	return &provider.LoadResponse{
		Kind: provider.LoadSeries,
		Name: "Dark",
		URL:  `{"id":70523,"type":"tv"}`,
		Year: ptr(2017),
		Episodes: []provider.Episode{
			{Data: "s1e1", Name: "Secrets", Season: ptr(1), Episode: ptr(1)},
			{Data: "s1e2", Name: "Lies", Season: ptr(1), Episode: ptr(2)},
			{Data: "s2e1", Name: "Beginnings", Season: ptr(2), Episode: ptr(1)},
		},
		Seasons: []provider.SeasonData{{Season: 1, Name: "Season One"}},
	}
}

func TestService_DetailsCachesLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("tmdb").AnyTimes()
	p.EXPECT().Load(gomock.Any(), `{"id":70523,"type":"tv"}`).Return(seriesResponse(), nil).Times(1)

	svc := NewService(NewCache(setupTestDB(t)), time.Hour, testLogger())
	ctx := context.Background()

	first, err := svc.Details(ctx, p, `{"id":70523,"type":"tv"}`)
	require.NoError(t, err)
	second, err := svc.Details(ctx, p, `{"id":70523,"type":"tv"}`)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, media.KindSeries, first.Kind)
	assert.Equal(t, "tmdb", first.Provider)
	require.Len(t, first.Seasons, 2)
	assert.Equal(t, "Season One", first.Seasons[0].Name)
	require.NotNil(t, first.EpisodeCount)
	assert.Equal(t, 3, *first.EpisodeCount)
}

func TestService_InvalidateForcesReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("tmdb").AnyTimes()
	p.EXPECT().Load(gomock.Any(), gomock.Any()).Return(seriesResponse(), nil).Times(2)

	svc := NewService(NewCache(setupTestDB(t)), time.Hour, testLogger())
	ctx := context.Background()

	_, err := svc.Load(ctx, p, "x")
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(ctx, "tmdb"))
	_, err = svc.Load(ctx, p, "x")
	require.NoError(t, err)
}

func TestService_CorruptCacheEntryIsBypassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("tmdb").AnyTimes()
	p.EXPECT().Load(gomock.Any(), "x").Return(seriesResponse(), nil)

	cache := NewCache(setupTestDB(t))
	require.NoError(t, cache.Set(context.Background(), "load:tmdb:x", "tmdb", []byte("{not json"), time.Hour))

	resp, err := NewService(cache, time.Hour, testLogger()).Load(context.Background(), p, "x")
	require.NoError(t, err)
	assert.Equal(t, "Dark", resp.Name)
}

func TestService_BrokenCacheIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("tmdb").AnyTimes()
	p.EXPECT().Load(gomock.Any(), "x").Return(seriesResponse(), nil)

	db := setupTestDB(t)
	require.NoError(t, db.Close())

	resp, err := NewService(NewCache(db), time.Hour, testLogger()).Load(context.Background(), p, "x")
	require.NoError(t, err)
	assert.Equal(t, "tmdb", resp.APIName)
}

func TestService_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("tmdb").AnyTimes()
	p.EXPECT().Load(gomock.Any(), "x").Return(seriesResponse(), nil).Times(2)

	svc := NewService(nil, 0, testLogger())
	for range 2 {
		_, err := svc.Load(context.Background(), p, "x")
		require.NoError(t, err)
	}
	assert.NoError(t, svc.Invalidate(context.Background(), "tmdb"))
}

func TestService_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("tmdb").AnyTimes()
	cause := errors.New("404")
	p.EXPECT().Load(gomock.Any(), "x").Return(nil, cause)

	_, err := NewService(nil, 0, testLogger()).Details(context.Background(), p, "x")
	assert.ErrorIs(t, err, cause)
	var callErr *provider.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "load", callErr.Op)
}
