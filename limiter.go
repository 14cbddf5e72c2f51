package metaengine

import (
	"sync"
	"time"
)

// RateLimiter counts events per key (usually a client IP) in a sliding window.
type RateLimiter struct {
	mu     sync.Mutex
	events map[string][]time.Time
	max    int
	window time.Duration
	stop   chan struct{}
	once   sync.Once
}

// NewRateLimiter creates a RateLimiter that allows max events per window.
// Call Stop to end its background pruning.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	l := &RateLimiter{
		events: make(map[string][]time.Time),
		max:    max,
		window: window,
		stop:   make(chan struct{}),
	}
	go l.pruneLoop()
	return l
}

func (l *RateLimiter) pruneLoop() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.prune(time.Now())
		case <-l.stop:
			return
		}
	}
}

func (l *RateLimiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, hits := range l.events {
		kept := recent(hits, cutoff)
		if len(kept) == 0 {
			delete(l.events, key)
		} else {
			l.events[key] = kept
		}
	}
}

// Stop ends background pruning. It is safe to call more than once.
func (l *RateLimiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// Allow records an event for key and reports whether it was within the limit.
func (l *RateLimiter) Allow(key string) bool {
	if !l.Check(key) {
		return false
	}
	l.Record(key)
	return true
}

// Check reports whether key is still under the limit without recording.
func (l *RateLimiter) Check(key string) bool {
	cutoff := time.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := recent(l.events[key], cutoff)
	l.events[key] = kept
	return len(kept) < l.max
}

// Record registers an event for key.
func (l *RateLimiter) Record(key string) {
	l.mu.Lock()
	l.events[key] = append(l.events[key], time.Now())
	l.mu.Unlock()
}

func recent(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
