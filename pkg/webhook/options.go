package webhook

import (
	"net/http"
	"time"
)

// DeliveryResult describes a single delivery attempt.
type DeliveryResult struct {
	EventID    string
	StatusCode int
	Duration   time.Duration
	Error      error
}

// Success reports whether the endpoint answered with a 2xx status.
func (r DeliveryResult) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// DeliveryHook is called after each delivery attempt
type DeliveryHook func(result DeliveryResult)

// Option configures a Sender.
type Option func(*Sender)

// WithTimeout sets the per-request timeout. Default is 10 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Sender) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithHeader adds a static header to every request.
// Content-Type and signature headers cannot be overridden.
func WithHeader(key, value string) Option {
	return func(s *Sender) {
		if key != "" && value != "" {
			s.headers.Set(key, value)
		}
	}
}

// WithSignature enables HMAC-SHA256 request signing with the given secret.
func WithSignature(secret string) Option {
	return func(s *Sender) {
		s.secret = secret
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		if client != nil {
			s.client = client
		}
	}
}

// WithCircuitBreaker guards the endpoint with cb.
func WithCircuitBreaker(cb *CircuitBreaker) Option {
	return func(s *Sender) {
		s.breaker = cb
	}
}

// WithOnDelivery sets a callback invoked after every attempt that reached the network.
func WithOnDelivery(hook DeliveryHook) Option {
	return func(s *Sender) {
		s.onDelivery = hook
	}
}
