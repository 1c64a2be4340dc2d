package httpserver

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// limiterEntry pairs a token bucket with the last time its key was seen.
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// ipLimiter hands out one token bucket per client IP.
type ipLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     float64
	burst   int
	idleTTL time.Duration
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &ipLimiter{
		entries: make(map[string]*limiterEntry),
		rps:     rps,
		burst:   burst,
		idleTTL: 10 * time.Minute,
	}
}

func (l *ipLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	if e, ok := l.entries[key]; ok {
		e.lastAccess = now
		return e.limiter
	}
	l.sweepLocked(now)
	e := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst), lastAccess: now}
	l.entries[key] = e
	return e.limiter
}

// sweepLocked drops buckets idle for longer than idleTTL.
func (l *ipLimiter) sweepLocked(now time.Time) {
	for k, e := range l.entries {
		if now.Sub(e.lastAccess) > l.idleTTL {
			delete(l.entries, k)
		}
	}
}

// middleware rejects requests over the per-IP budget with 429.
func (l *ipLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !l.get(key).Allow() {
			log.Warn().Str("ip", key).Str("path", r.URL.Path).Msg("rate limited")
			writeError(w, http.StatusTooManyRequests, "rate_limited")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr, which chi's RealIP has already rewritten.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
