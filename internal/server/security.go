package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kizuna-dev/teambuilder/internal/logger"
	"github.com/kizuna-dev/teambuilder/internal/metrics"
)

// APIKeyMiddleware guards operator routes (registration and admin) with a
// shared key. Clients that keep presenting a wrong key are locked out until
// the detector window rolls over, even if they later send the right one.
func APIKeyMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if detector.AuthLocked(ip) {
				metrics.SecurityEvents.WithLabelValues(metrics.SecurityEventAuthLocked).Inc()
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				failures := detector.RecordFailedAuth(ip)
				metrics.SecurityEvents.WithLabelValues(metrics.SecurityEventAuthFailed).Inc()

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip,
					"failures_in_window", failures)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies; pull and grant payloads
// are a few hundred bytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector keeps per-IP request and failed-auth counts for
// the current window. All counts reset together when the window elapses.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	requests    map[string]int
	failedAuth  map[string]int
	windowStart time.Time

	window        time.Duration
	maxRequests   int
	maxFailedAuth int
	now           func() time.Time
}

// NewSuspiciousActivityDetector creates a detector with the default window,
// request ceiling and failed-auth lockout
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	d := &SuspiciousActivityDetector{
		window:        DetectorWindow,
		maxRequests:   MaxRequestsPerWindow,
		maxFailedAuth: FailedAuthLockoutAt,
		now:           time.Now,
	}
	d.rollWindow(d.now())
	return d
}

// RecordFailedAuth counts a bad key from ip and returns the count so far in
// this window
func (d *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.maybeRoll()
	d.failedAuth[ip]++
	n := d.failedAuth[ip]

	if n == FailedAuthAlertAt || n == d.maxFailedAuth {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n, "locked", n >= d.maxFailedAuth)
	}
	return n
}

// AuthLocked reports whether ip has used up its failed attempts
func (d *SuspiciousActivityDetector) AuthLocked(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.maybeRoll()
	return d.failedAuth[ip] >= d.maxFailedAuth
}

// RecordRequest counts a request from ip and returns false once ip is over
// the per-window ceiling
func (d *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.maybeRoll()
	d.requests[ip]++
	n := d.requests[ip]
	if n <= d.maxRequests {
		return true
	}

	// Log the first rejection, then sample
	if over := n - d.maxRequests; over == 1 || over%HighRateLogEveryRequest == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// maybeRoll starts a new window when the current one has elapsed.
// Caller must hold the mutex.
func (d *SuspiciousActivityDetector) maybeRoll() {
	if now := d.now(); now.Sub(d.windowStart) > d.window {
		d.rollWindow(now)
	}
}

func (d *SuspiciousActivityDetector) rollWindow(now time.Time) {
	d.requests = make(map[string]int)
	d.failedAuth = make(map[string]int)
	d.windowStart = now
}

// RateLimitMiddleware rejects clients over the detector's request ceiling
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				metrics.SecurityEvents.WithLabelValues(metrics.SecurityEventRateLimited).Inc()
				w.Header().Set(HeaderRetryAfter, retryAfterSeconds(detector))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// retryAfterSeconds is the time left in the detector's current window
func retryAfterSeconds(d *SuspiciousActivityDetector) string {
	d.mu.Lock()
	left := d.window - d.now().Sub(d.windowStart)
	d.mu.Unlock()
	if left < time.Second {
		left = time.Second
	}
	return strconv.Itoa(int(left.Seconds()))
}

// extractIP returns the client address. X-Forwarded-For is only honoured
// when the direct peer is a trusted proxy, and then only its last hop.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers suited to a JSON API
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			h.Set(HeaderCSP, HeaderValueCSPNone)
			// Balances and pull results must not be cached by intermediaries
			h.Set(HeaderCacheControl, HeaderValueNoStore)

			next.ServeHTTP(w, r)
		})
	}
}
