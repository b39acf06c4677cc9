package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_DoRunsOncePerKey(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("fixtures:live", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if g.InFlight() != 0 {
		t.Fatalf("expected no in-flight keys after completion")
	}
}

func TestSingleFlight_ErrorIsSharedButNotRemembered(t *testing.T) {
	var g SingleFlight
	boom := errors.New("boom")

	if _, err, _ := g.Do("k", func() (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	v, err, _ := g.Do("k", func() (any, error) { return "second", nil })
	if err != nil || v != "second" {
		t.Fatalf("expected fresh call after error, got %v, %v", v, err)
	}
}
