package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/football-portal/internal/platform/resilience"
)

type entry struct {
	value      any
	insertedAt time.Time
}

// Store is an in-process TTL cache with per-key single-flight loading.
// An entry is fresh while now-insertedAt < ttl; a zero ttl never expires.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	observe    func(hit bool)
	flight     resilience.SingleFlight
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxEntries bounds the number of stored keys. Zero means unbounded.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithObserver registers a callback invoked on every GetOrLoad lookup.
func WithObserver(fn func(hit bool)) Option {
	return func(s *Store) {
		s.observe = fn
	}
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(e, now) {
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && s.expired(cur, now) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// IsExpired reports whether key is absent or stale.
func (s *Store) IsExpired(key string) bool {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	return !ok || s.expired(e, s.now())
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:      value,
		insertedAt: s.now(),
	}
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		s.evictLocked()
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key or runs loader once for all
// concurrent callers. The loader context keeps the caller's values but not
// its cancellation. Loader errors are returned and never stored.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		s.record(true)
		return value, nil
	}
	s.record(false)

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		// The load outlives the leading caller so waiters on the same key
		// are not failed by its cancellation.
		loaded, loadErr := loader(context.WithoutCancel(ctx))
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) expired(e entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.insertedAt) >= s.ttl
}

func (s *Store) record(hit bool) {
	if s.observe != nil {
		s.observe(hit)
	}
}

// evictLocked drops stale entries, then the oldest insertions until the
// store fits maxEntries again. Caller holds s.mu.
func (s *Store) evictLocked() {
	now := s.now()
	for key, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, key)
		}
	}
	for len(s.entries) > s.maxEntries {
		var (
			oldestKey string
			oldestAt  time.Time
			found     bool
		)
		for key, e := range s.entries {
			if !found || e.insertedAt.Before(oldestAt) {
				oldestKey, oldestAt, found = key, e.insertedAt, true
			}
		}
		if !found {
			return
		}
		delete(s.entries, oldestKey)
	}
}
