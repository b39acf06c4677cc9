package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)}
}

func TestStore_GetOrLoad_SharesConcurrentLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "fixtures", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "fixtures:live", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "fixtures" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ReusesFreshEntry(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(5*time.Minute, WithClock(clock.Now))
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return []int{1, 2}, nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	clock.Advance(5*time.Minute - time.Second)
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_EntryExpiresAtTTLBoundary(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(5*time.Minute, WithClock(clock.Now))
	store.Set(context.Background(), "fixtures:date:2026-03-01", "day")

	clock.Advance(5 * time.Minute)
	if _, ok := store.Get(context.Background(), "fixtures:date:2026-03-01"); ok {
		t.Fatalf("expected entry to be stale at exactly ttl")
	}
	if !store.IsExpired("fixtures:date:2026-03-01") {
		t.Fatalf("expected IsExpired to report stale entry")
	}
}

func TestStore_GetOrLoad_RefetchesAfterExpiry(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(time.Minute, WithClock(clock.Now))
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		return calls.Add(1), nil
	}

	first, _ := store.GetOrLoad(context.Background(), "k", loader)
	clock.Advance(2 * time.Minute)
	second, _ := store.GetOrLoad(context.Background(), "k", loader)

	if first.(int32) != 1 || second.(int32) != 2 {
		t.Fatalf("expected reload after expiry, got %v then %v", first, second)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	failing := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, errors.New("upstream down")
	}

	if _, err := store.GetOrLoad(context.Background(), "k", failing); err == nil {
		t.Fatalf("expected loader error")
	}
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("failed load must not be stored")
	}
	if _, err := store.GetOrLoad(context.Background(), "k", failing); err == nil {
		t.Fatalf("expected loader error on retry")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_GetOrLoad_CachesEmptyResult(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return []string{}, nil
	}

	_, _ = store.GetOrLoad(context.Background(), "empty", loader)
	_, _ = store.GetOrLoad(context.Background(), "empty", loader)

	if got := calls.Load(); got != 1 {
		t.Fatalf("empty result should be cached, loader called %d times", got)
	}
}

func TestStore_SetEvictsOldestBeyondMaxEntries(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(time.Hour, WithClock(clock.Now), WithMaxEntries(2))
	ctx := context.Background()

	store.Set(ctx, "a", 1)
	clock.Advance(time.Second)
	store.Set(ctx, "b", 2)
	clock.Advance(time.Second)
	store.Set(ctx, "c", 3)

	if store.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", store.Len())
	}
	if _, ok := store.Get(ctx, "a"); ok {
		t.Fatalf("expected oldest entry to be evicted")
	}
	if _, ok := store.Get(ctx, "c"); !ok {
		t.Fatalf("expected newest entry to stay")
	}
}

func TestStore_ObserverSeesHitsAndMisses(t *testing.T) {
	t.Parallel()

	var hits, misses atomic.Int32
	store := NewStore(time.Minute, WithObserver(func(hit bool) {
		if hit {
			hits.Add(1)
			return
		}
		misses.Add(1)
	}))
	loader := func(context.Context) (any, error) { return "v", nil }

	_, _ = store.GetOrLoad(context.Background(), "k", loader)
	_, _ = store.GetOrLoad(context.Background(), "k", loader)

	if hits.Load() != 1 || misses.Load() != 1 {
		t.Fatalf("expected 1 hit and 1 miss, got hits=%d misses=%d", hits.Load(), misses.Load())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "team:id:1", 1)
	store.Set(ctx, "team:id:2", 2)
	store.Set(ctx, "competition:id:1", 3)

	store.DeletePrefix(ctx, "team:")

	if store.Len() != 1 {
		t.Fatalf("expected only competition entry to remain, got %d entries", store.Len())
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_GetOrLoad_LeaderCancellationDoesNotFailWaiters(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	var calls atomic.Int32
	loader := func(ctx context.Context) (any, error) {
		calls.Add(1)
		once.Do(func() { close(started) })
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return "fixtures", nil
	}

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(leaderCtx, "fixtures:live", loader)
		leaderErr <- err
	}()
	<-started

	type result struct {
		value any
		err   error
	}
	waiter := make(chan result, 1)
	go func() {
		v, err := store.GetOrLoad(context.Background(), "fixtures:live", loader)
		waiter <- result{value: v, err: err}
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	close(release)

	got := <-waiter
	if got.err != nil {
		t.Fatalf("waiter failed after leader cancellation: %v", got.err)
	}
	if s, _ := got.value.(string); s != "fixtures" {
		t.Fatalf("unexpected waiter value %v", got.value)
	}
	<-leaderErr
	if _, ok := store.Get(context.Background(), "fixtures:live"); !ok {
		t.Fatalf("expected shared load to fill the cache")
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("loader called %d times, want 1", n)
	}
}
