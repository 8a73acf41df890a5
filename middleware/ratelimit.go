package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/dmitrymomot/resmux/core/handler"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Rate is the sustained request rate per key (default: 10 per second)
	Rate rate.Limit

	// Burst is the maximum burst size per key (default: 20)
	Burst int

	// KeyFunc derives the limiter key from the request (default: client IP)
	KeyFunc func(ctx handler.Context) string

	// OnLimit is invoked instead of the next handler when the limit is
	// exceeded (default: 429 with Retry-After)
	OnLimit handler.HandlerFunc[handler.Context]
}

// RateLimit creates a rate limiting middleware with default configuration:
// 10 requests per second with a burst of 20, keyed by client IP.
func RateLimit[C handler.Context]() handler.Middleware[C] {
	return RateLimitWithConfig[C](RateLimitConfig{})
}

// RateLimitWithConfig creates a rate limiting middleware with custom
// configuration. Each key gets its own token bucket; buckets live for
// the lifetime of the middleware.
func RateLimitWithConfig[C handler.Context](cfg RateLimitConfig) handler.Middleware[C] {
	if cfg.Rate <= 0 {
		cfg.Rate = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = clientIP
	}

	var limiters sync.Map // key string -> *rate.Limiter

	limiterFor := func(key string) *rate.Limiter {
		if l, ok := limiters.Load(key); ok {
			return l.(*rate.Limiter)
		}
		l, _ := limiters.LoadOrStore(key, rate.NewLimiter(cfg.Rate, cfg.Burst))
		return l.(*rate.Limiter)
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			if limiterFor(cfg.KeyFunc(ctx)).Allow() {
				return next(ctx)
			}

			if cfg.OnLimit != nil {
				return cfg.OnLimit(ctx)
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(cfg.Rate)))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return nil
			}
		}
	}
}

// retryAfterSeconds estimates how long until one token is available.
func retryAfterSeconds(r rate.Limit) int {
	if r >= 1 {
		return 1
	}
	return int(1/float64(r)) + 1
}

// clientIP resolves the originating client address. Behind a proxy or
// load balancer RemoteAddr is the proxy, which would collapse every
// client into one bucket, so forwarding headers take precedence.
func clientIP(ctx handler.Context) string {
	r := ctx.Request()

	// X-Forwarded-For holds the client first, then each hop.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
