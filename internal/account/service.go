package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"trustedform/internal/platform/metrics"
	"trustedform/internal/trustedform/providers"
	"trustedform/pkg/platform/sentinel"
)

const defaultTTL = 5 * time.Minute

// Doer sends the upstream request.
type Doer interface {
	Do(ctx context.Context, req *providers.Request) (*providers.Response, error)
}

// Service looks accounts up, caching successes and collapsing concurrent
// lookups of the same key into one upstream call.
type Service struct {
	url     string
	doer    Doer
	cache   Cache
	ttl     time.Duration
	group   singleflight.Group
	metrics *metrics.Metrics
	logger  *slog.Logger
}

type Option func(*Service)

func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a lookup service against accountURL.
func NewService(accountURL string, doer Doer, opts ...Option) *Service {
	s := &Service{
		url:    accountURL,
		doer:   doer,
		cache:  NewMemoryCache(),
		ttl:    defaultTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup returns the account behind apiKey. A transport failure is returned
// as an error; any HTTP answer is returned as a Result.
func (s *Service) Lookup(ctx context.Context, apiKey string) (*Result, error) {
	key := cacheKey(apiKey)
	if body, ok := s.cached(ctx, key); ok {
		s.metrics.IncrementAccountLookup(true)
		return &Result{Status: http.StatusOK, Body: body, Cached: true}, nil
	}
	s.metrics.IncrementAccountLookup(false)

	// The shared fetch outlives any single caller; the transport timeout
	// bounds it.
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		// A caller that just finished may have filled the cache.
		if body, ok := s.cached(shared, key); ok {
			return &Result{Status: http.StatusOK, Body: body, Cached: true}, nil
		}
		return s.fetch(shared, key, apiKey)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*Result), nil
	}
}

func (s *Service) cached(ctx context.Context, key string) ([]byte, bool) {
	body, err := s.cache.Get(ctx, key)
	if err == nil {
		return body, true
	}
	if !errors.Is(err, sentinel.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "account cache read failed", "error", err)
	}
	return nil, false
}

func (s *Service) fetch(ctx context.Context, key, apiKey string) (*Result, error) {
	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Authorization", providers.BasicAuth(apiKey))

	res, err := s.doer.Do(ctx, &providers.Request{
		Method: http.MethodGet,
		URL:    s.url,
		Header: header,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Status: res.Status, Body: res.Body}
	if result.OK() {
		if err := s.cache.Set(ctx, key, res.Body, s.ttl); err != nil {
			s.logger.WarnContext(ctx, "account cache write failed", "error", err)
		}
	}
	return result, nil
}
