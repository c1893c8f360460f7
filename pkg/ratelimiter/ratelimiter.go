package ratelimiter

import (
	"context"
	"fmt"
)

// RateLimiter decides whether the caller identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
	AllowN(ctx context.Context, key string, n int) (*Result, error)
}

// Store keeps bucket state. ConsumeTokens refills the bucket for elapsed
// time, then takes tokens if enough are left. A negative Remaining means the
// request is denied and nothing was taken. Zero tokens only refreshes the
// state. Stores stamp CheckedAt with their own clock.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (Result, error)
	Reset(ctx context.Context, key string) error
}

// Bucket is a token bucket limiter over a Store. The same Bucket can serve
// several routes when keys carry the route name.
type Bucket struct {
	store Store
	cfg   Config
}

// NewBucket validates cfg and binds it to store.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, cfg: cfg}, nil
}

func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	return b.AllowN(ctx, key, 1)
}

func (b *Bucket) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTokenCount, n)
	}
	return b.consume(ctx, key, n)
}

// Status reports the bucket for key without taking tokens.
func (b *Bucket) Status(ctx context.Context, key string) (*Result, error) {
	return b.consume(ctx, key, 0)
}

// Reset refills the bucket for key.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

func (b *Bucket) consume(ctx context.Context, key string, n int) (*Result, error) {
	res, err := b.store.ConsumeTokens(ctx, key, n, b.cfg)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
