package http

import (
	"context"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-r2base/internal/response"
	"github.com/MKhiriev/go-r2base/internal/workers"
	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL is how long a client's limiter is kept without
	// requests.
	limiterIdleTTL = 10 * time.Minute

	limiterPruneInterval = time.Minute
)

type clientLimiter struct {
	*rate.Limiter
	// lastSeen is in unix nanoseconds.
	lastSeen atomic.Int64
}

// limiterRegistry keeps one token bucket per client IP.
type limiterRegistry struct {
	mu       sync.RWMutex
	limiters map[string]*clientLimiter

	limit rate.Limit
	burst int
}

func newLimiterRegistry(perSecond float64, burst int) *limiterRegistry {
	if burst <= 0 {
		burst = 1
	}
	return &limiterRegistry{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

// getOrCreate retrieves the limiter of key or creates it, and marks it as
// used at now.
func (l *limiterRegistry) getOrCreate(key string, now time.Time) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()

	if !exists {
		l.mu.Lock()
		// Double-check after acquiring write lock
		if limiter, exists = l.limiters[key]; !exists {
			limiter = &clientLimiter{Limiter: rate.NewLimiter(l.limit, l.burst)}
			l.limiters[key] = limiter
		}
		l.mu.Unlock()
	}

	limiter.lastSeen.Store(now.UnixNano())
	return limiter.Limiter
}

// prune drops the limiters not used since before cutoff.
func (l *limiterRegistry) prune(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	dropped := 0
	for key, limiter := range l.limiters {
		if limiter.lastSeen.Load() < cutoff.UnixNano() {
			delete(l.limiters, key)
			dropped++
		}
	}
	return dropped
}

func (l *limiterRegistry) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.limiters)
}

// withRateLimit rejects requests over the per-client budget with a
// TooManyRequests envelope.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiters.getOrCreate(clientIP(r), time.Now()).Allow() {
			w.Header().Set("Retry-After", "1")
			response.Write(w, r, response.TooManyRequests(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Run drops idle per-client limiters until ctx is done. It returns at once
// when rate limiting is disabled.
func (h *Handler) Run(ctx context.Context) {
	if h.limiters == nil {
		return
	}

	workers.Ticker{
		Interval: limiterPruneInterval,
		Fn: func(context.Context) {
			if n := h.limiters.prune(time.Now().Add(-limiterIdleTTL)); n > 0 {
				h.logger.Debug().Int("dropped", n).Msg("idle rate limiters dropped")
			}
		},
	}.Run(ctx)
}
