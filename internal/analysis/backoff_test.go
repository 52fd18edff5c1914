package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitAfterLimitDoubles(t *testing.T) {
	var waits []time.Duration
	r := newRateLimiter()
	r.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}

	ctx := context.Background()
	require.NoError(t, r.waitAfterLimit(ctx))
	require.NoError(t, r.waitAfterLimit(ctx))
	require.NoError(t, r.waitAfterLimit(ctx))

	assert.Equal(t, []time.Duration{time.Minute, 2 * time.Minute, 4 * time.Minute}, waits)
}

func TestWaitAfterLimitExhausts(t *testing.T) {
	r := newRateLimiter()
	r.sleep = func(context.Context, time.Duration) error { return nil }

	ctx := context.Background()
	for i := 0; i < maxRateLimitAttempts-1; i++ {
		require.NoError(t, r.waitAfterLimit(ctx))
	}

	err := r.waitAfterLimit(ctx)
	var exhausted *RateLimitExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, maxRateLimitAttempts, exhausted.Attempts)
}

func TestSuccessStreakForgivesLimits(t *testing.T) {
	r := newRateLimiter()
	r.sleep = func(context.Context, time.Duration) error { return nil }

	ctx := context.Background()
	require.NoError(t, r.waitAfterLimit(ctx))
	require.NoError(t, r.waitAfterLimit(ctx))

	for i := 0; i < resetThreshold; i++ {
		r.recordSuccess()
	}

	// The counter restarted, so the next wait is the base interval again.
	var last time.Duration
	r.sleep = func(_ context.Context, d time.Duration) error {
		last = d
		return nil
	}
	require.NoError(t, r.waitAfterLimit(ctx))
	assert.Equal(t, time.Minute, last)
}

func TestShortSuccessStreakDoesNotForgive(t *testing.T) {
	r := newRateLimiter()
	r.sleep = func(context.Context, time.Duration) error { return nil }

	ctx := context.Background()
	require.NoError(t, r.waitAfterLimit(ctx))
	for i := 0; i < resetThreshold-1; i++ {
		r.recordSuccess()
	}

	var last time.Duration
	r.sleep = func(_ context.Context, d time.Duration) error {
		last = d
		return nil
	}
	require.NoError(t, r.waitAfterLimit(ctx))
	assert.Equal(t, 2*time.Minute, last)
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"status code", errors.New("googleapi: Error 429: too many requests"), true},
		{"rate limit phrase", errors.New("Rate Limit exceeded"), true},
		{"quota", errors.New("Quota exceeded for model"), true},
		{"grpc status", errors.New("rpc error: code = ResourceExhausted desc = resource_exhausted"), true},
		{"spelled out", errors.New("resource exhausted"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRateLimited(tt.err))
		})
	}
}
