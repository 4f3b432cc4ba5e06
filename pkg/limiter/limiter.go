package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter counts hits per key (usually a client IP) inside a sliding
// window and reports when the key has used up its allowance.
type MemoryLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	window  time.Duration
	maxHits int
	now     func() time.Time

	lastSweep time.Time
}

func NewMemoryLimiter(window time.Duration, maxHits int) *MemoryLimiter {
	return &MemoryLimiter{
		history: make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
		now:     time.Now,
	}
}

// Allow records a hit for key and reports whether it fits in the window.
// Rejected hits are not recorded.
func (r *MemoryLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)
	hits := r.prune(key, now)

	if len(hits) >= r.maxHits {
		return false
	}

	r.history[key] = append(hits, now)

	return true
}

// TooMany reports whether key has reached the limit without recording a hit.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.prune(key, r.now())) >= r.maxHits
}

// RetryAfter is the time left until the oldest hit of key leaves the window.
func (r *MemoryLimiter) RetryAfter(key string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	hits := r.prune(key, now)

	if len(hits) == 0 {
		return 0
	}

	return r.window - now.Sub(hits[0])
}

// sweep drops every key whose hits have all left the window. It runs at most
// once per window so keys that are never seen again do not pile up.
func (r *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.window {
		return
	}

	r.lastSweep = now

	for key := range r.history {
		r.prune(key, now)
	}
}

func (r *MemoryLimiter) prune(key string, now time.Time) []time.Time {
	slice := r.history[key]

	pruned := slice[:0]
	for _, t := range slice {
		if now.Sub(t) < r.window {
			pruned = append(pruned, t)
		}
	}

	if len(pruned) == 0 {
		delete(r.history, key)

		return nil
	}

	r.history[key] = pruned

	return pruned
}
