// Package ratelimit throttles calculation requests per client address.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"cutdata/internal/handlers"

	"golang.org/x/time/rate"
)

// idleTTL is how long a client's bucket is kept after its last request.
const idleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for
// longer than idleTTL are swept, so the map is bounded by the clients seen
// within that window.
type IPRateLimiter struct {
	ips       map[string]*client
	mu        sync.Mutex
	r         rate.Limit
	b         int
	now       func() time.Time
	lastSweep time.Time
}

// NewIPRateLimiter allows r requests per second with bursts of b per IP.
// A non-positive r disables limiting.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       make(map[string]*client),
		r:         r,
		b:         b,
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

func (i *IPRateLimiter) limiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= idleTTL {
		i.sweep(now)
	}

	c, exists := i.ips[ip]
	if !exists {
		c = &client{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

// sweep drops idle buckets. The caller holds mu.
func (i *IPRateLimiter) sweep(now time.Time) {
	for ip, c := range i.ips {
		if now.Sub(c.lastSeen) >= idleTTL {
			delete(i.ips, ip)
		}
	}
	i.lastSweep = now
}

// Clients reports how many client buckets are held.
func (i *IPRateLimiter) Clients() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// Allow reports whether a request from ip may proceed now.
func (i *IPRateLimiter) Allow(ip string) bool {
	if i.r <= 0 {
		return true
	}
	return i.limiter(ip).Allow()
}

// clientIP strips the port from RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware rejects requests over the limit with 429.
func (i *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			handlers.WriteError(w, http.StatusTooManyRequests, "too many requests, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}
