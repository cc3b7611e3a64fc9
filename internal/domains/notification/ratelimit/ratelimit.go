package ratelimit

import (
	"sync"
	"time"

	"lodge/shared/timezone"
)

const (
	DefaultMaxSends      = 5
	DefaultWindowSeconds = 60
)

// Limiter is a sliding-window counter keyed by phone number. State is
// in-process only; a restart resets it, which is acceptable for a best-effort
// SMS throttle.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	sends  map[string][]time.Time
	now    func() time.Time
}

func New(maxSends, windowSeconds int) *Limiter {
	if maxSends <= 0 {
		maxSends = DefaultMaxSends
	}

	if windowSeconds <= 0 {
		windowSeconds = DefaultWindowSeconds
	}

	return &Limiter{
		max:    maxSends,
		window: time.Duration(windowSeconds) * time.Second,
		sends:  map[string][]time.Time{},
		now:    timezone.Now,
	}
}

// Allow records an attempt for the phone and reports whether it is within
// the rolling window budget. Denied attempts are not recorded.
func (l *Limiter) Allow(phone string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.sends[phone][:0]

	for _, at := range l.sends[phone] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}

	if len(recent) >= l.max {
		l.sends[phone] = recent

		return false
	}

	l.sends[phone] = append(recent, now)

	return true
}

// SetClock overrides the time source. Tests only.
func (l *Limiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.now = now
}
