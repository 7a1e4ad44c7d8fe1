package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/killallgit/search-api/internal/services/cache"
	"github.com/killallgit/search-api/internal/services/youtube"
	apperrors "github.com/killallgit/search-api/pkg/errors"
)

const (
	// PersonSearchLimit is how many URLs are requested from the web provider
	PersonSearchLimit = 4

	defaultTimeout = 10 * time.Second
)

// Service delegates to the search providers. Provider failures never escape
// it: every error (and panic) becomes an empty result.
type Service struct {
	web     WebSearcher
	video   VideoSearcher
	cache   cache.Cache
	ttl     time.Duration
	timeout time.Duration
}

// Option configures a Service
type Option func(*Service)

// WithTimeout bounds every outbound provider call
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithCache caches non-empty provider results for ttl. A zero ttl disables caching.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		if c != nil && ttl > 0 {
			s.cache = c
			s.ttl = ttl
		}
	}
}

// NewService creates a search service over the given providers
func NewService(web WebSearcher, video VideoSearcher, opts ...Option) *Service {
	s := &Service{
		web:     web,
		video:   video,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PersonSearch returns up to PersonSearchLimit result URLs for query
func (s *Service) PersonSearch(ctx context.Context, query string) []string {
	if s.web == nil {
		return []string{}
	}
	return run[string](ctx, s, s.web.Name(), query, PersonSearchLimit, s.web.Search)
}

// VideoSearch returns up to limit videos for query
func (s *Service) VideoSearch(ctx context.Context, query string, limit int) []youtube.Video {
	if s.video == nil || limit <= 0 {
		return []youtube.Video{}
	}
	return run[youtube.Video](ctx, s, s.video.Name(), query, limit, s.video.Search)
}

type searchFunc[T any] func(ctx context.Context, query string, limit int) ([]T, error)

// run calls a provider through the cache and converts every failure into an
// empty, non-nil slice truncated to limit.
func run[T any](ctx context.Context, s *Service, provider, query string, limit int, fn searchFunc[T]) []T {
	logger := zerolog.Ctx(ctx).With().
		Str("provider", provider).
		Str("query", query).
		Int("limit", limit).
		Logger()

	key := fmt.Sprintf("%s:%d:%s", provider, limit, query)
	if cached, ok := s.fromCache(ctx, key); ok {
		var results []T
		if err := json.Unmarshal(cached, &results); err == nil {
			logger.Debug().Int("count", len(results)).Msg("Search cache hit")
			return results
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	results, err := safeCall(callCtx, query, limit, fn)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError(provider, err)
		}
		logger.Warn().
			Err(err).
			Str("error_code", string(apperrors.GetCode(err))).
			Dur("elapsed", time.Since(start)).
			Msg("Search provider failed, returning no results")
		return []T{}
	}

	if results == nil {
		results = []T{}
	}
	if len(results) > limit {
		results = results[:limit]
	}
	logger.Debug().Int("count", len(results)).Dur("elapsed", time.Since(start)).Msg("Search provider returned")

	if len(results) > 0 {
		s.toCache(ctx, key, results)
	}
	return results
}

func safeCall[T any](ctx context.Context, query string, limit int, fn searchFunc[T]) (results []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return fn(ctx, query, limit)
}

func (s *Service) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(ctx, key)
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("key", key).Msg("Failed to cache search results")
	}
}

// CacheStats reports cache usage, or nil when caching is disabled
func (s *Service) CacheStats() *cache.CacheStats {
	if sp, ok := s.cache.(cache.StatsProvider); ok {
		stats := sp.Stats()
		return &stats
	}
	return nil
}
