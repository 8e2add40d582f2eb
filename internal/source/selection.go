package source

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/vmunix/couchtv/pkg/provider"
)

const (
	defaultAttempts = 5
	defaultDelay    = 500 * time.Millisecond
)

// Selection is the explicit "current provider" context passed to the
// components that act on a single provider.
type Selection struct {
	registry *Registry
	attempts uint
	delay    time.Duration
	log      *slog.Logger

	mu       sync.RWMutex
	selected string
}

// SelectionOption configures a Selection.
type SelectionOption func(*Selection)

// WithAttempts sets how many times Await checks for a provider.
func WithAttempts(n uint) SelectionOption {
	return func(s *Selection) {
		if n > 0 {
			s.attempts = n
		}
	}
}

// WithDelay sets the fixed pause between Await checks.
func WithDelay(d time.Duration) SelectionOption {
	return func(s *Selection) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// NewSelection creates a selection over registry with nothing selected.
func NewSelection(registry *Registry, log *slog.Logger, opts ...SelectionOption) *Selection {
	if log == nil {
		log = slog.Default()
	}
	s := &Selection{registry: registry, attempts: defaultAttempts, delay: defaultDelay, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select records name as the current provider. An empty name clears the
// selection, making the first registered provider current.
func (s *Selection) Select(name string) {
	s.mu.Lock()
	s.selected = name
	s.mu.Unlock()
	s.log.Debug("provider selected", "provider", name)
}

// Selected returns the recorded provider name.
func (s *Selection) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Current returns the selected provider without waiting.
func (s *Selection) Current() (provider.Provider, error) {
	name := s.Selected()
	if name != "" {
		return s.registry.Get(name)
	}
	all := s.registry.All()
	if len(all) == 0 {
		return nil, ErrNoneAvailable
	}
	return all[0], nil
}

// Await polls for the current provider a bounded number of times with a
// fixed delay, for callers that start before registration has finished.
// It returns ErrNoneAvailable when the budget runs out.
func (s *Selection) Await(ctx context.Context) (provider.Provider, error) {
	start := time.Now()
	p, err := retry.DoWithData(
		func() (provider.Provider, error) { return s.Current() },
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.log.Debug("provider not ready", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.log.Warn("no provider available", "selected", s.Selected(),
			"attempts", s.attempts, "duration_ms", time.Since(start).Milliseconds())
		if errors.Is(err, ErrNoneAvailable) {
			return nil, err
		}
		return nil, errors.Join(ErrNoneAvailable, err)
	}
	return p, nil
}
