package middleware

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	visitorCleanupInterval = 5 * time.Minute
	visitorExpiry          = 10 * time.Minute
)

// RateLimiter enforces a per-client-IP request rate. A rate of 0 disables
// limiting entirely.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SecurityRateLimit returns a middleware limiting each client IP to
// requestsPerSecond with the given burst allowance. Rejected requests get
// 429 with the unified error payload and a Retry-After hint.
func SecurityRateLimit(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}

	go rl.cleanupVisitors()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r)
			if ip == "" {
				// Unattributable request; let it through rather than
				// punish everyone behind a broken proxy.
				log.Printf("Rate limiting: unable to extract IP from %s", r.RemoteAddr)
				next.ServeHTTP(w, r)
				return
			}

			if !rl.Allow(ip) {
				log.Printf("Rate limit exceeded for IP: %s", ip)
				writeRateLimitErrorResponse(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Allow reports whether ip may make a request right now.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.rate == 0 {
		return true
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

// cleanupVisitors drops state for IPs idle past visitorExpiry so the map
// cannot grow without bound.
func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(visitorCleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > visitorExpiry {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// extractIP resolves the client IP, preferring proxy headers over the
// socket address. X-Forwarded-For may carry a chain; the first entry is
// the originating client.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if isValidIP(first) {
			return first
		}
	}

	if xri := r.Header.Get("X-Real-IP"); isValidIP(xri) {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr may already be a bare IP in tests
		if isValidIP(r.RemoteAddr) {
			return r.RemoteAddr
		}
		return ""
	}
	if isValidIP(host) {
		return host
	}
	return ""
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

func writeRateLimitErrorResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "60")
	w.WriteHeader(http.StatusTooManyRequests)

	json.NewEncoder(w).Encode(ErrorResponse{Error: "Too many requests"})
}
