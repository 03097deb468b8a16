package ratelimit

import (
	"sync"
	"time"

	"github.com/mediabeam/video-link-bot/internal/logutils"
)

// Limiter gates inbound requests per chat so one user cannot hammer the
// extraction engine.
type Limiter interface {
	Allow(chatID int64) bool
}

// TokenBucketLimiter keeps one token bucket per chat.
type TokenBucketLimiter struct {
	buckets    map[int64]*bucket
	limit      int
	refillRate time.Duration
	mu         sync.Mutex
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

func NewTokenBucketLimiter(limit int, refillRate time.Duration) *TokenBucketLimiter {
	limiter := &TokenBucketLimiter{
		buckets:    make(map[int64]*bucket),
		limit:      limit,
		refillRate: refillRate,
	}
	go limiter.cleanup()
	return limiter
}

func (l *TokenBucketLimiter) Allow(chatID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, exists := l.buckets[chatID]
	if !exists {
		b = &bucket{tokens: l.limit, lastRefill: time.Now()}
		l.buckets[chatID] = b
	}

	now := time.Now()
	if elapsed := now.Sub(b.lastRefill); elapsed >= l.refillRate {
		tokensToAdd := int(elapsed / l.refillRate)
		b.tokens = min(l.limit, b.tokens+tokensToAdd)
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}

	logutils.Log.WithField("chat_id", chatID).Debug("Rate limit exceeded")
	return false
}

// cleanup drops buckets idle for more than a day.
func (l *TokenBucketLimiter) cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for chatID, b := range l.buckets {
			if now.Sub(b.lastRefill) > 24*time.Hour {
				delete(l.buckets, chatID)
			}
		}
		l.mu.Unlock()
	}
}

// NoOpLimiter allows everything; used in tests.
type NoOpLimiter struct{}

func (*NoOpLimiter) Allow(_ int64) bool { return true }
