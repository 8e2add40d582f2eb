package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// DefaultDebounce is the quiescence window applied to query edits.
const DefaultDebounce = 300 * time.Millisecond

// Result is the outcome of one query generation. Idle is set for blank
// queries, which clear the results without searching.
type Result struct {
	Generation uint64
	Query      string
	Sections   []Section
	Idle       bool
	Err        error
}

// Session turns a stream of query edits into search results. Edits are
// debounced; a new edit cancels any search still running for an older one,
// and only the newest generation is ever emitted.
type Session struct {
	searcher Searcher
	debounce time.Duration
	log      *slog.Logger

	queries chan string
	results chan Result
	stopped chan struct{}
}

// NewSession creates a session. Run must be called to process queries.
func NewSession(searcher Searcher, debounce time.Duration, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	if debounce < 0 {
		debounce = 0
	}
	return &Session{
		searcher: searcher,
		debounce: debounce,
		log:      log,
		queries:  make(chan string, 16),
		results:  make(chan Result),
		stopped:  make(chan struct{}),
	}
}

// Submit records a query edit. It is a no-op once Run has returned.
func (s *Session) Submit(query string) {
	select {
	case s.queries <- query:
	case <-s.stopped:
	}
}

// Results delivers the newest settled generation. A result the reader has
// not taken yet is replaced when a newer edit arrives. It is closed when
// Run returns.
func (s *Session) Results() <-chan Result {
	return s.results
}

// Run processes queries until ctx is canceled. At most one settled result
// waits for the reader; a newer edit discards it unread.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.results)
	defer close(s.stopped)

	var (
		generation uint64
		pending    string
		settle     <-chan time.Time
		latest     Result
		out        chan<- Result // nil while nothing is waiting
	)
	cancel := context.CancelFunc(func() {})
	done := make(chan Result)
	defer func() { cancel() }()

	hold := func(r Result) {
		latest = r
		out = s.results
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case q := <-s.queries:
			generation++
			cancel()
			cancel = func() {}
			if out != nil {
				s.log.Debug("dropping unread result", "generation", latest.Generation, "current", generation)
				out = nil
			}
			pending = q
			settle = time.After(s.debounce)

		case out <- latest:
			out = nil

		case <-settle:
			settle = nil
			q := strings.TrimSpace(pending)
			if q == "" {
				hold(Result{Generation: generation, Query: pending, Idle: true})
				continue
			}

			var runCtx context.Context
			runCtx, cancel = context.WithCancel(ctx)
			gen := generation
			s.log.Debug("search generation started", "generation", gen, "query", q)
			go func() {
				sections, err := s.searcher.Search(runCtx, q)
				select {
				case done <- Result{Generation: gen, Query: q, Sections: sections, Err: err}:
				case <-runCtx.Done():
				}
			}()

		case r := <-done:
			if r.Generation != generation {
				s.log.Debug("dropping superseded result", "generation", r.Generation, "current", generation)
				continue
			}
			cancel()
			cancel = func() {}
			if errors.Is(r.Err, context.Canceled) {
				continue
			}
			hold(r)
		}
	}
}
