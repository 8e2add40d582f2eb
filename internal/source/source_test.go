package source_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/couchtv/internal/source"
	"github.com/vmunix/couchtv/pkg/provider/mocks"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func named(ctrl *gomock.Controller, name string) *mocks.MockProvider {
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return(name).AnyTimes()
	return p
}

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, err := source.NewRegistry(named(ctrl, "b"), named(ctrl, "a"))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, reg.Names())

	p, err := reg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", p.Name())

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, source.ErrProviderNotFound)

	err = reg.Register(named(ctrl, "a"))
	assert.ErrorIs(t, err, source.ErrDuplicateProvider)

	// All returns a snapshot
	all := reg.All()
	all[0] = nil
	assert.NotNil(t, reg.All()[0])
}

func TestSelection_CurrentDefaultsToFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, err := source.NewRegistry(named(ctrl, "first"), named(ctrl, "second"))
	require.NoError(t, err)

	sel := source.NewSelection(reg, testLogger())
	p, err := sel.Current()
	require.NoError(t, err)
	assert.Equal(t, "first", p.Name())

	sel.Select("second")
	p, err = sel.Current()
	require.NoError(t, err)
	assert.Equal(t, "second", p.Name())
}

func TestSelection_AwaitWaitsForRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, err := source.NewRegistry()
	require.NoError(t, err)

	sel := source.NewSelection(reg, testLogger(), source.WithAttempts(50), source.WithDelay(5*time.Millisecond))
	sel.Select("late")

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = reg.Register(named(ctrl, "late"))
	}()

	p, err := sel.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late", p.Name())
}

func TestSelection_AwaitGivesUp(t *testing.T) {
	reg, err := source.NewRegistry()
	require.NoError(t, err)

	sel := source.NewSelection(reg, testLogger(), source.WithAttempts(3), source.WithDelay(time.Millisecond))
	_, err = sel.Await(context.Background())
	assert.ErrorIs(t, err, source.ErrNoneAvailable)

	sel.Select("ghost")
	_, err = sel.Await(context.Background())
	assert.ErrorIs(t, err, source.ErrNoneAvailable)
	assert.ErrorIs(t, err, source.ErrProviderNotFound)
}

func TestSelection_AwaitCanceled(t *testing.T) {
	reg, err := source.NewRegistry()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = source.NewSelection(reg, testLogger()).Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
