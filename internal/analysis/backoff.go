package analysis

import (
	"context"
	"strings"
	"sync"
	"time"
)

const (
	// maxRateLimitAttempts stops the run on the fourth rate limit.
	maxRateLimitAttempts = 4
	// baseWait is the first backoff interval; each further limit doubles it.
	baseWait = time.Minute
	// resetThreshold clears the rate-limit count after this many consecutive
	// successful calls.
	resetThreshold = 5
)

// rateLimiter tracks rate-limit hits across concurrent analyses and applies
// exponential backoff. Safe for concurrent use.
type rateLimiter struct {
	mu            sync.Mutex
	limitCount    int
	successStreak int
	sleep         func(context.Context, time.Duration) error
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{sleep: sleepCtx}
}

// waitAfterLimit records one rate-limit hit and blocks for the backoff
// interval. Returns RateLimitExhaustedError once the retry budget is spent.
func (r *rateLimiter) waitAfterLimit(ctx context.Context) error {
	r.mu.Lock()
	r.limitCount++
	r.successStreak = 0
	count := r.limitCount
	r.mu.Unlock()

	if count >= maxRateLimitAttempts {
		return &RateLimitExhaustedError{Attempts: count}
	}
	return r.sleep(ctx, baseWait<<(count-1))
}

// recordSuccess notes a successful call; a long enough streak forgives
// earlier rate limits.
func (r *rateLimiter) recordSuccess() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successStreak++
	if r.successStreak >= resetThreshold {
		r.limitCount = 0
		r.successStreak = 0
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// isRateLimited reports whether an API error looks like a quota or rate
// limit rejection.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "resource exhausted")
}
