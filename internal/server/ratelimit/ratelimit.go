// Package ratelimit provides per-client rate limiting using the token
// bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

// tokenBucket allows a burst up to capacity, refilling at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() (bool, int, time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refill(now)

	allowed := false
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		allowed = true
	}

	resetTime := now
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}

	return allowed, int(tb.tokens), resetTime
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one token bucket per client.
type Limiter struct {
	mu             sync.RWMutex
	buckets        map[string]*tokenBucket
	lastAccess     map[string]time.Time
	limitPerMinute int
	enabled        bool
	cleanupTicker  *time.Ticker
	cleanupStop    chan struct{}
}

// NewLimiter creates a limiter allowing limitPerMinute requests per
// client. A non-positive limit or enabled=false disables limiting.
func NewLimiter(limitPerMinute int, enabled bool) *Limiter {
	l := &Limiter{
		buckets:        make(map[string]*tokenBucket),
		lastAccess:     make(map[string]time.Time),
		limitPerMinute: limitPerMinute,
		enabled:        enabled && limitPerMinute > 0,
	}

	if l.enabled {
		l.cleanupTicker = time.NewTicker(cleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}

	return l
}

// Allow reports whether a request from clientID may proceed.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.enabled {
		return true, Info{Allowed: true}
	}

	bucket := l.bucket(clientID)
	allowed, remaining, resetTime := bucket.allow()

	info := Info{
		Allowed:   allowed,
		Limit:     l.limitPerMinute,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		// One token refills in 60/limit seconds.
		info.RetryAfter = time.Duration(float64(time.Minute) / float64(l.limitPerMinute))
	}

	return allowed, info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) bucket(clientID string) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[clientID]
	if !ok {
		bucket = newTokenBucket(l.limitPerMinute, float64(l.limitPerMinute)/60.0)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	return bucket
}

// cleanup evicts buckets idle for more than two cleanup intervals.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupStop:
			return
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-2 * cleanupInterval)
			l.mu.Lock()
			for clientID, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, clientID)
					delete(l.lastAccess, clientID)
				}
			}
			l.mu.Unlock()
		}
	}
}
