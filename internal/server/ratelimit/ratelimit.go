// Package ratelimit bounds calls to the external AI service. It is a
// fixed-window limiter with explicit state (window start, count, capacity)
// injected into the handlers that consume the AI client, so it can be
// tested in isolation.
package ratelimit

import (
	"sync"
	"time"
)

// window tracks one client's usage inside the current window.
type window struct {
	start time.Time
	count int
}

// Info reports the outcome of one admission check.
type Info struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter admits up to Capacity requests per client per Window.
type Limiter struct {
	capacity int
	length   time.Duration

	mu      sync.Mutex
	windows map[string]window

	// now is injected for tests.
	now func() time.Time
}

// New creates a limiter admitting capacity requests per window length.
func New(capacity int, length time.Duration) *Limiter {
	return &Limiter{
		capacity: capacity,
		length:   length,
		windows:  make(map[string]window),
		now:      time.Now,
	}
}

// NewWithClock creates a limiter with an injected clock.
func NewWithClock(capacity int, length time.Duration, now func() time.Time) *Limiter {
	l := New(capacity, length)
	l.now = now
	return l
}

// Allow records one request for the client and reports whether it is
// admitted. The window resets once its length has elapsed.
func (l *Limiter) Allow(client string) Info {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[client]
	if !ok || now.Sub(w.start) >= l.length {
		w = window{start: now}
	}

	if w.count >= l.capacity {
		return Info{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: w.start.Add(l.length).Sub(now),
		}
	}

	w.count++
	l.windows[client] = w
	return Info{Allowed: true, Remaining: l.capacity - w.count}
}

// Active returns the number of clients currently tracked.
func (l *Limiter) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// Prune drops expired windows. The server calls it on every admission, so
// state stays bounded by clients active within one window length.
func (l *Limiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for client, w := range l.windows {
		if now.Sub(w.start) >= l.length {
			delete(l.windows, client)
		}
	}
}
