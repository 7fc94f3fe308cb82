// Package ratelimit enforces a minimum interval between outbound requests to
// the same host, keeping the service polite to relay endpoints.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks the last request time per host.
type Limiter struct {
	mu          sync.Mutex
	hosts       map[string]time.Time
	minInterval time.Duration
}

// New creates a limiter with the given minimum interval between requests.
func New(minInterval time.Duration) *Limiter {
	return &Limiter{
		hosts:       make(map[string]time.Time),
		minInterval: minInterval,
	}
}

// Allow reports whether a request to host may proceed now. When it returns
// true the host's timestamp is updated; when false the timestamp is left
// untouched so the original interval still governs.
func (l *Limiter) Allow(host string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	last, ok := l.hosts[host]
	if ok && now.Sub(last) < l.minInterval {
		return false
	}

	l.hosts[host] = now
	return true
}

// Wait blocks until a request to host is permitted, then records it.
func (l *Limiter) Wait(host string) {
	for {
		l.mu.Lock()
		now := time.Now()
		last, ok := l.hosts[host]
		if !ok || now.Sub(last) >= l.minInterval {
			l.hosts[host] = now
			l.mu.Unlock()
			return
		}
		remaining := l.minInterval - now.Sub(last)
		l.mu.Unlock()

		time.Sleep(remaining)
	}
}

// Reset clears the recorded timestamp for one host.
func (l *Limiter) Reset(host string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.hosts, host)
}

// ResetAll clears all recorded timestamps.
func (l *Limiter) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hosts = make(map[string]time.Time)
}
