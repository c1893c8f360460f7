// Package redis connects to the optional Redis server used to share rate
// limit buckets between instances.
//
// Connect retries the initial ping according to Config and Healthcheck
// adapts the client to the server's readiness probe:
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0", RetryAttempts: 3}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := ratelimiter.NewRedisStore(client)
//
// Errors wrap go-redis errors with errors.Join so callers can match both the
// sentinel and the driver error.
package redis
