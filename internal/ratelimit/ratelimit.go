// Package ratelimit provides a keyed rate limiter using token bucket algorithm.
// It supports both non-blocking (Allow) and blocking (Wait) operations.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// KeyedRateLimiter manages per-key rate limiting.
// Each unique key gets its own independent rate limiter.
type KeyedRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a new keyed rate limiter.
// rps: requests per second allowed.
// burst: maximum burst size (tokens available immediately).
func New(rps float64, burst int) *KeyedRateLimiter {
	krl := &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		done:     make(chan struct{}),
	}

	go krl.run()

	return krl
}

// Allow checks if a request for the given key should be allowed.
// Returns immediately without blocking. Use for inbound request protection.
func (krl *KeyedRateLimiter) Allow(key string) bool {
	return krl.getLimiter(key).Allow()
}

// Wait blocks until a request for the given key is allowed or context is canceled.
func (krl *KeyedRateLimiter) Wait(ctx context.Context, key string) error {
	return krl.getLimiter(key).Wait(ctx)
}

// getLimiter returns the limiter for a key, creating one if needed.
func (krl *KeyedRateLimiter) getLimiter(key string) *rate.Limiter {
	krl.mu.RLock()
	limiter, exists := krl.limiters[key]
	krl.mu.RUnlock()

	if exists {
		return limiter
	}

	krl.mu.Lock()
	defer krl.mu.Unlock()

	if limiter, exists = krl.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(krl.limit, krl.burst)
	krl.limiters[key] = limiter
	return limiter
}

// Stop shuts down the background goroutine.
func (krl *KeyedRateLimiter) Stop() {
	krl.stopOnce.Do(func() {
		close(krl.done)
	})
}

// run waits for the stop signal. The mutation API sees one key per client
// IP, so idle limiter entries are not reclaimed; a cleanup pass would
// need last-access tracking on the limiter.
func (krl *KeyedRateLimiter) run() {
	<-krl.done
}
