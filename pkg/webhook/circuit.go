package webhook

import (
	"sync"
	"time"
)

// CircuitState is the position of a CircuitBreaker.
type CircuitState int

const (
	CircuitClosed   CircuitState = iota // deliveries pass
	CircuitOpen                         // deliveries fail fast with ErrCircuitOpen
	CircuitHalfOpen                     // probes pass until enough succeed
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	}
	return "unknown"
}

// CircuitBreaker stops deliveries to an endpoint after consecutive failures
// and lets probes through once the recovery timeout has passed.
// Safe for concurrent use.
type CircuitBreaker struct {
	mu sync.Mutex

	failureThreshold int
	successThreshold int
	recoveryTimeout  time.Duration

	state     CircuitState
	failures  int
	successes int
	openedAt  time.Time

	onChange func(from, to CircuitState)
	now      func() time.Time
}

// NewCircuitBreaker opens after failureThreshold consecutive failures and
// closes again after successThreshold successful probes. Non-positive
// arguments fall back to 5 failures, 2 successes and 30 seconds.
func NewCircuitBreaker(failureThreshold, successThreshold int, recoveryTimeout time.Duration) *CircuitBreaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if successThreshold <= 0 {
		successThreshold = 2
	}
	if recoveryTimeout <= 0 {
		recoveryTimeout = 30 * time.Second
	}
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		successThreshold: successThreshold,
		recoveryTimeout:  recoveryTimeout,
		now:              time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (cb *CircuitBreaker) SetClock(now func() time.Time) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.now = now
}

// OnStateChange registers fn to be called on every state change. fn runs
// while the breaker is locked and must not call back into it.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to CircuitState)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onChange = fn
}

// Allow reports whether a delivery may proceed.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitOpen {
		if cb.now().Sub(cb.openedAt) <= cb.recoveryTimeout {
			return false
		}
		cb.setLocked(CircuitHalfOpen)
	}
	return true
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	if cb.state != CircuitHalfOpen {
		return
	}
	cb.successes++
	if cb.successes >= cb.successThreshold {
		cb.setLocked(CircuitClosed)
	}
}

// RecordFailure counts a failure. Any failure while half-open reopens the
// circuit.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	if cb.state == CircuitHalfOpen || (cb.state == CircuitClosed && cb.failures >= cb.failureThreshold) {
		cb.openedAt = cb.now()
		cb.setLocked(CircuitOpen)
	}
}

// State reports the current state. An open circuit whose recovery timeout
// has passed reports half-open.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitOpen && cb.now().Sub(cb.openedAt) > cb.recoveryTimeout {
		return CircuitHalfOpen
	}
	return cb.state
}

// Reset closes the circuit and clears the counters.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.setLocked(CircuitClosed)
	cb.failures = 0
}

func (cb *CircuitBreaker) setLocked(to CircuitState) {
	from := cb.state
	cb.state = to
	cb.successes = 0
	if to == CircuitClosed {
		cb.failures = 0
	}
	if from != to && cb.onChange != nil {
		cb.onChange(from, to)
	}
}
