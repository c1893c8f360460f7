package ratelimiter

import (
	"fmt"
	"time"
)

// Result is the outcome of one check.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // negative when denied
	ResetAt   time.Time // when the next token arrives
	CheckedAt time.Time // store clock at the check
}

func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is zero for allowed requests and never negative. It is measured
// from CheckedAt, or from the current time when CheckedAt is unset.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	from := r.CheckedAt
	if from.IsZero() {
		from = time.Now()
	}
	return max(r.ResetAt.Sub(from), 0)
}

// Config is the bucket shape. The defaults allow a burst of five contact
// submissions and one more per minute.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"5"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1m"`
}

// Validate rejects non-positive values.
func (c Config) Validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval %s", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
