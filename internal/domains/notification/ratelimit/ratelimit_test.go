package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/notification/ratelimit"
)

func TestLimiter_Allow(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	limiter := ratelimit.New(3, 60)
	limiter.SetClock(func() time.Time { return now })

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("+911234567890"), "send %d should be allowed", i+1)
	}

	assert.False(t, limiter.Allow("+911234567890"), "budget exhausted")
	assert.True(t, limiter.Allow("+919999999999"), "other phones are unaffected")
}

func TestLimiter_WindowSlides(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	limiter := ratelimit.New(2, 60)
	limiter.SetClock(func() time.Time { return now })

	assert.True(t, limiter.Allow("+911234567890"))
	assert.True(t, limiter.Allow("+911234567890"))
	assert.False(t, limiter.Allow("+911234567890"))

	// Past the window the old sends expire.
	now = now.Add(61 * time.Second)
	assert.True(t, limiter.Allow("+911234567890"))
}

func TestLimiter_DeniedAttemptsNotRecorded(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	limiter := ratelimit.New(1, 60)
	limiter.SetClock(func() time.Time { return now })

	assert.True(t, limiter.Allow("+911234567890"))

	// Hammering the limiter while denied must not extend the block.
	for i := 0; i < 10; i++ {
		now = now.Add(10 * time.Second)
		limiter.Allow("+911234567890")
	}

	// 100 seconds after the single recorded send the phone is clear again.
	assert.True(t, limiter.Allow("+911234567890"))
}

func TestNew_Defaults(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	limiter := ratelimit.New(0, 0)
	limiter.SetClock(func() time.Time { return now })

	for i := 0; i < ratelimit.DefaultMaxSends; i++ {
		assert.True(t, limiter.Allow("+911234567890"))
	}

	assert.False(t, limiter.Allow("+911234567890"))
}
