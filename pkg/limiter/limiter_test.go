package limiter

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemoryLimiter_BasicFlow(t *testing.T) {
	current := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	lim := NewMemoryLimiter(time.Minute, 3)
	lim.now = func() time.Time { return current }

	key := "10.0.0.1"

	if lim.TooMany(key) {
		t.Fatalf("should not be limited initially")
	}

	for i := 0; i < 3; i++ {
		if !lim.Allow(key) {
			t.Fatalf("hit %d should be allowed", i+1)
		}
	}

	if lim.Allow(key) {
		t.Fatalf("should be limited after reaching threshold")
	}

	if !lim.TooMany(key) {
		t.Fatalf("expected key to be limited")
	}

	current = current.Add(20 * time.Second)

	if got := lim.RetryAfter(key); got != 40*time.Second {
		t.Fatalf("expected 40s retry after, got %s", got)
	}

	current = current.Add(41 * time.Second)

	if lim.TooMany(key) {
		t.Fatalf("should not be limited after window passes")
	}

	if got := lim.RetryAfter(key); got != 0 {
		t.Fatalf("expected no retry after, got %s", got)
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	lim := NewMemoryLimiter(time.Minute, 1)

	if !lim.Allow("a") || !lim.Allow("b") {
		t.Fatalf("first hit of each key should pass")
	}

	if lim.Allow("a") {
		t.Fatalf("second hit of a should be limited")
	}
}

func TestMemoryLimiter_SweepsStaleKeys(t *testing.T) {
	current := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	lim := NewMemoryLimiter(time.Minute, 1)
	lim.now = func() time.Time { return current }

	for i := 0; i < 500; i++ {
		lim.Allow(fmt.Sprintf("198.51.100.%d", i))
	}

	if len(lim.history) != 500 {
		t.Fatalf("expected 500 tracked keys, got %d", len(lim.history))
	}

	current = current.Add(30 * time.Second)
	lim.Allow("fresh")

	if len(lim.history) != 501 {
		t.Fatalf("keys inside the window must be kept, got %d", len(lim.history))
	}

	current = current.Add(61 * time.Second)
	lim.Allow("late")

	if len(lim.history) != 1 {
		t.Fatalf("expected only the latest key after the window, got %d", len(lim.history))
	}

	if _, ok := lim.history["late"]; !ok {
		t.Fatalf("expected late key to be tracked")
	}
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	lim := NewMemoryLimiter(time.Minute, 50)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if lim.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if allowed != 50 {
		t.Fatalf("expected 50 allowed hits, got %d", allowed)
	}
}
