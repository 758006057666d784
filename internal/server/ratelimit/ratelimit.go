// Package ratelimit provides per-client rate limiting using the token
// bucket algorithm. Analysis requests fan out to the embedding backend,
// so the API caps how fast a single client can submit them.
package ratelimit

import (
	"sync"
	"time"
)

// bucket tracks tokens for one client.
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // requests per window
	Window          time.Duration // refill window
	Burst           int           // bucket capacity; defaults to Limit
	CleanupInterval time.Duration // 0 disables idle bucket cleanup
}

// DefaultConfig allows 30 analysis requests per minute per client.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           30,
		Window:          time.Minute,
		Burst:           10,
		CleanupInterval: 5 * time.Minute,
	}
}

// Limiter manages token buckets for multiple clients.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Burst <= 0 {
		config.Burst = config.Limit
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether a request from clientID may proceed, consuming a
// token when it does.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled || l.config.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.config.Burst), lastRefill: now}
		l.buckets[clientID] = b
	}

	b.tokens = min(float64(l.config.Burst), b.tokens+now.Sub(b.lastRefill).Seconds()*refillRate)
	b.lastRefill = now

	allowed := b.tokens >= 1.0
	if allowed {
		b.tokens -= 1.0
	}

	resetTime := now
	if b.tokens < float64(l.config.Burst) {
		secondsUntilFull := (float64(l.config.Burst) - b.tokens) / refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}

	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: int(b.tokens),
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = max(time.Until(now.Add(time.Duration(float64(time.Second)/refillRate))), 0)
	}
	return allowed, info
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeIdleBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// removeIdleBuckets drops buckets not touched for over an hour.
func (l *Limiter) removeIdleBuckets() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastRefill.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
