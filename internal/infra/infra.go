// Package infra provides shared infrastructure for the feed layer:
// a request-scoped response cache, token-bucket rate limiting, and a
// pre-configured HTTP client.
package infra

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/newslyhq/newsly/pkg/models"
)

// DefaultUserAgent identifies Newsly to the upstream feed endpoint.
const DefaultUserAgent = "Mozilla/5.0 (compatible; Newsly/1.0; +https://github.com/newslyhq/newsly)"

// NewHTTPClient returns an HTTP client with the given timeout. A zero
// timeout falls back to 15 seconds; the upstream source specifies none,
// so one is imposed and a timeout counts as an ingestion failure.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// --- Feed response cache ---

type cacheEntry struct {
	entries   []models.RawEntry
	expiresAt time.Time
}

// FeedCache is a thread-safe TTL cache of raw feed entries keyed by
// keyword. A non-positive TTL disables it entirely: every Get misses
// and Set is a no-op, so a fresh search always re-fetches.
type FeedCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

// NewFeedCache creates a cache with the given TTL.
func NewFeedCache(ttl time.Duration) *FeedCache {
	return &FeedCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached entries for a keyword, or nil, false on a miss.
func (c *FeedCache) Get(keyword string) ([]models.RawEntry, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[keyword]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.entries, true
}

// Set stores the entries fetched for a keyword.
func (c *FeedCache) Set(keyword string, entries []models.RawEntry) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[keyword] = cacheEntry{
		entries:   entries,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Flush removes all cached feed responses.
func (c *FeedCache) Flush() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// --- Rate limiter ---

// RateLimiter provides simple token-bucket rate limiting toward the
// feed endpoint. A nil limiter never blocks.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     int
	maxTokens  int
	refillRate time.Duration
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter that allows maxTokens requests
// per refillRate duration.
func NewRateLimiter(maxTokens int, refillRate time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl == nil {
		return nil
	}
	for {
		rl.mu.Lock()
		rl.refill()
		if rl.tokens > 0 {
			rl.tokens--
			rl.mu.Unlock()
			return nil
		}
		rl.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
			// Check again after a short sleep.
		}
	}
}

// refill adds tokens based on elapsed time. Must be called with mu held.
func (rl *RateLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(rl.lastRefill)
	if elapsed >= rl.refillRate {
		periods := int(elapsed / rl.refillRate)
		rl.tokens += periods
		if rl.tokens > rl.maxTokens {
			rl.tokens = rl.maxTokens
		}
		rl.lastRefill = rl.lastRefill.Add(time.Duration(periods) * rl.refillRate)
	}
}
