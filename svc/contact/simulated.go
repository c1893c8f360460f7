package contact

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	DefaultSimulatedDelay       = 1500 * time.Millisecond
	DefaultSimulatedFailureRate = 0.05
)

// ErrSimulatedFailure is returned by SimulatedSubmitter on an injected failure.
var ErrSimulatedFailure = errors.New("contact: simulated network failure")

// SimulatedSubmitter stands in for a real backend in demos and local runs.
// It waits for Delay and then fails with probability FailureRate.
type SimulatedSubmitter struct {
	Delay       time.Duration
	FailureRate float64

	mu    sync.Mutex
	float func() float64
}

// SimulatedOption configures a SimulatedSubmitter.
type SimulatedOption func(*SimulatedSubmitter)

func WithSimulatedDelay(d time.Duration) SimulatedOption {
	return func(s *SimulatedSubmitter) {
		if d >= 0 {
			s.Delay = d
		}
	}
}

// WithFailureRate sets the failure probability, clamped to [0, 1].
func WithFailureRate(rate float64) SimulatedOption {
	return func(s *SimulatedSubmitter) {
		s.FailureRate = min(max(rate, 0), 1)
	}
}

// WithRandom replaces the random source. float must return values in [0, 1).
func WithRandom(float func() float64) SimulatedOption {
	return func(s *SimulatedSubmitter) {
		if float != nil {
			s.float = float
		}
	}
}

func NewSimulatedSubmitter(opts ...SimulatedOption) *SimulatedSubmitter {
	s := &SimulatedSubmitter{
		Delay:       DefaultSimulatedDelay,
		FailureRate: DefaultSimulatedFailureRate,
		float:       rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit waits for the configured delay. The wait is cut short only if ctx
// is canceled, which Form never does since it detaches the context.
func (s *SimulatedSubmitter) Submit(ctx context.Context, _ Submission) error {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	s.mu.Lock()
	roll := s.float()
	s.mu.Unlock()

	if roll < s.FailureRate {
		return ErrSimulatedFailure
	}
	return nil
}
