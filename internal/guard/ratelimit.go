// Package guard holds request-level protections in front of the service
// layer.
package guard

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// RateLimiter implements a sliding window rate limiter keyed by an
// arbitrary string (the login handler keys it by email).
type RateLimiter struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	windows map[string][]time.Time
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit hits per window.
func NewRateLimiter(clock clockwork.Clock, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clock:   clock,
		windows: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}
}

// Allow records a hit for key and reports whether it is within limits.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	cutoff := now.Add(-rl.window)

	entries := rl.windows[key]
	valid := entries[:0]
	for _, t := range entries {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.limit {
		rl.windows[key] = valid
		return false
	}

	rl.windows[key] = append(valid, now)
	return true
}
