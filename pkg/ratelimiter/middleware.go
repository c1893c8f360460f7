package ratelimiter

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/landkit/pkg/clientip"
)

// maxKeyLength is the maximum allowed length for a rate limit key
// to prevent excessively long storage keys.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// Composite combines multiple key functions into one.
// Long keys (>64 chars) are hashed using FNV-1a for storage efficiency.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		// Collect non-empty parts
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		// Handle empty case
		if len(parts) == 0 {
			return ""
		}

		// Single key optimization
		if len(parts) == 1 && len(parts[0]) <= maxKeyLength {
			return parts[0]
		}

		// Join multiple parts
		combined := strings.Join(parts, ":")

		// Hash if too long using FNV-1a (fast, simple, built-in)
		if len(combined) > maxKeyLength {
			h := fnv.New64a()
			h.Write([]byte(combined))
			// Base36 encoding for compact output (~13 chars)
			return strconv.FormatUint(h.Sum64(), 36)
		}

		return combined
	}
}

// KeyByIP keys requests by client IP, honoring proxy headers.
func KeyByIP() KeyFunc {
	return func(r *http.Request) string {
		if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
			return "ip:" + ip
		}
		if ip := clientip.GetIP(r); ip != "" {
			return "ip:" + ip
		}
		return ""
	}
}

// KeyByRoute keys requests by method and URL path.
func KeyByRoute() KeyFunc {
	return func(r *http.Request) string {
		return r.Method + ":" + r.URL.Path
	}
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	onLimited func(r *http.Request, res *Result)
	onError   func(w http.ResponseWriter, r *http.Request, err error)
	denied    http.Handler
}

// WithOnLimited registers a hook called for every rejected request.
func WithOnLimited(fn func(r *http.Request, res *Result)) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.onLimited = fn
	}
}

// WithErrorHandler replaces the default 500 response on store errors.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// WithDeniedHandler replaces the default 429 response body. Rate limit
// headers are already set when it runs.
func WithDeniedHandler(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.denied = h
		}
	}
}

// Middleware rejects requests once the bucket for their key is empty.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
		denied: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if retryAfter := int(math.Ceil(result.RetryAfter().Seconds())); retryAfter > 0 {
					h.Set("Retry-After", strconv.Itoa(retryAfter))
				}
				if cfg.onLimited != nil {
					cfg.onLimited(r, result)
				}
				cfg.denied.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
