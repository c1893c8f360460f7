package redis

import "time"

// Config describes the optional Redis connection shared by rate limiting.
// An empty ConnectionURL keeps everything in process memory.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                             // redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`   // Connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`  // Delay between attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"` // Upper bound for the whole Connect call
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
