package ratelimit

import (
	"sync"
	"time"

	"freight-matching-platform/internal/config"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets are dropped after TTL, 0 keeps them
	MaxBuckets int           // new clients are refused once reached, 0 is unbounded
}

// FromConfig builds the limiter configured for the API: a NopLimiter when
// rate limiting is disabled, a per-client token bucket otherwise.
func FromConfig(cfg config.RateLimit, clock Clock) Limiter {
	if !cfg.Enabled {
		return NopLimiter{}
	}
	return NewTokenBucketLimiter(clock, Config{
		Rate:       cfg.Rate,
		Burst:      cfg.Burst,
		TTL:        cfg.TTL,
		MaxBuckets: cfg.MaxBuckets,
	})
}

// TokenBucketLimiter keeps one token bucket per client key.
type TokenBucketLimiter struct {
	cfg         Config
	clock       Clock
	mu          sync.RWMutex
	buckets     map[string]*bucket
	lastCleanup time.Time
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	last     time.Time
	lastSeen time.Time
}

// NewTokenBucketLimiter creates a limiter; non-positive rate and burst fall back to 1.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow takes one token from key's bucket.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()
	l.maybeCleanup(now)
	b := l.bucketFor(key, now)
	if b == nil {
		return false
	}
	return b.take(now, l.cfg.Rate, float64(l.cfg.Burst))
}

// Len returns the number of tracked clients.
func (l *TokenBucketLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

func (l *TokenBucketLimiter) bucketFor(key string, now time.Time) *bucket {
	l.mu.RLock()
	b := l.buckets[key]
	l.mu.RUnlock()
	if b != nil {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if b = l.buckets[key]; b != nil {
		return b
	}
	if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
		return nil
	}

	b = &bucket{tokens: float64(l.cfg.Burst), last: now, lastSeen: now}
	l.buckets[key] = b
	return b
}

func (b *bucket) take(now time.Time, rate, burst float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(now, rate, burst)
	b.lastSeen = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) refill(now time.Time, rate, burst float64) {
	dt := now.Sub(b.last)
	if dt <= 0 {
		return
	}
	b.tokens = min(burst, b.tokens+dt.Seconds()*rate)
	b.last = now
}

func (l *TokenBucketLimiter) maybeCleanup(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := max(time.Minute, l.cfg.TTL/2)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < interval {
		return
	}
	l.lastCleanup = now

	for k, b := range l.buckets {
		b.mu.Lock()
		idle := now.Sub(b.lastSeen)
		b.mu.Unlock()
		if idle > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
