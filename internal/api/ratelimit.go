package api

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// sessionLimiter hands out one token bucket per key: a session id, or a
// client address for callers without one.
type sessionLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	entries map[string]*limiterEntry
}

func newSessionLimiter(perSecond float64, burst int) *sessionLimiter {
	if burst < 1 {
		burst = 1
	}
	return &sessionLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		entries: make(map[string]*limiterEntry),
	}
}

func (l *sessionLimiter) enabled() bool {
	return l.limit > 0
}

func (l *sessionLimiter) allow(sessionID string, now time.Time) bool {
	if !l.enabled() {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[sessionID]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[sessionID] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// prune drops limiters idle since before and returns how many were removed.
func (l *sessionLimiter) prune(before time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for id, e := range l.entries {
		if e.lastSeen.Before(before) {
			delete(l.entries, id)
			n++
		}
	}
	return n
}

func (l *sessionLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
