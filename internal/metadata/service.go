package metadata

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/vmunix/couchtv/internal/details"
	"github.com/vmunix/couchtv/pkg/provider"
)

// DefaultTTL is how long a load response stays cached.
const DefaultTTL = 6 * time.Hour

const keyPrefixLoad = "load:"

// Service loads provider metadata through the cache.
type Service struct {
	cache *Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService creates a details service. A nil cache disables caching.
func NewService(cache *Cache, ttl time.Duration, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{cache: cache, ttl: ttl, log: log}
}

// Load returns the provider's load response for url, serving it from the
// cache when a live entry exists. Cache failures are logged and bypassed.
func (s *Service) Load(ctx context.Context, p provider.Provider, url string) (*provider.LoadResponse, error) {
	key := keyPrefixLoad + p.Name() + ":" + url

	if resp, ok := s.cached(ctx, key); ok {
		s.log.Debug("cache hit for load", "provider", p.Name(), "url", url)
		return resp, nil
	}

	start := time.Now()
	resp, err := p.Load(ctx, url)
	if err != nil {
		return nil, provider.WrapCall(p.Name(), "load", err)
	}
	if resp.APIName == "" {
		resp.APIName = p.Name()
	}
	s.log.Debug("loaded from provider", "provider", p.Name(), "url", url,
		"duration_ms", time.Since(start).Milliseconds())

	s.store(ctx, key, p.Name(), resp)
	return resp, nil
}

// Details loads url from p and aggregates the response into a detail view.
func (s *Service) Details(ctx context.Context, p provider.Provider, url string) (*details.MovieDetails, error) {
	resp, err := s.Load(ctx, p, url)
	if err != nil {
		return nil, err
	}
	return details.ToDetails(resp), nil
}

// Invalidate drops every cached response from providerName.
func (s *Service) Invalidate(ctx context.Context, providerName string) error {
	if s.cache == nil {
		return nil
	}
	n, err := s.cache.Invalidate(ctx, providerName)
	if err != nil {
		return err
	}
	s.log.Info("cache invalidated", "provider", providerName, "entries", n)
	return nil
}

func (s *Service) cached(ctx context.Context, key string) (*provider.LoadResponse, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var resp provider.LoadResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		s.log.Warn("failed to unmarshal cached load response", "key", key, "error", err)
		return nil, false
	}
	return &resp, true
}

func (s *Service) store(ctx context.Context, key, providerName string, resp *provider.LoadResponse) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Warn("failed to marshal load response for cache", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, providerName, data, s.ttl); err != nil {
		s.log.Warn("cache write failed", "key", key, "error", err)
	}
}
