package webhook

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid webhook configuration")
	ErrInvalidURL           = errors.New("invalid webhook URL")
	ErrInvalidPayload       = errors.New("invalid webhook payload")
	ErrPermanentFailure     = errors.New("permanent webhook failure")
	ErrTemporaryFailure     = errors.New("temporary webhook failure")
	ErrTimeout              = errors.New("webhook request timeout")
	ErrCircuitOpen          = errors.New("webhook circuit breaker is open")
	ErrSignatureMismatch    = errors.New("webhook signature mismatch")
)

// IsCircuitOpen checks if an error indicates the circuit breaker is open
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}
