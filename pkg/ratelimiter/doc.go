// Package ratelimiter provides token bucket rate limiting with pluggable
// storage and an HTTP middleware.
//
// A Bucket allows bursts up to Capacity and refills RefillRate tokens every
// RefillInterval. State lives in a Store: MemoryStore for a single instance,
// RedisStore when several instances share the limit.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: 10 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.KeyByIP())).
//		Post("/contact/{formID}/submit", submit)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on rejected ones.
// Requests whose key is empty are passed through untouched.
//
// Composite joins several key functions and hashes keys longer than 64 bytes
// with FNV-1a so storage keys stay short.
package ratelimiter
