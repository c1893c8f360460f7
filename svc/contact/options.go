package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultResetDelay     = 5 * time.Second
	DefaultFailureMessage = "Failed to send your message. Please try again."
)

// Observer is notified after every status change.
// It runs while the form is locked and must not call back into the Form.
type Observer func(ctx context.Context, from, to Status)

// Outcome classifies a Submit call for metrics.
type Outcome string

const (
	OutcomeSucceeded  Outcome = "succeeded"
	OutcomeFailed     Outcome = "failed"
	OutcomeInvalid    Outcome = "invalid"
	OutcomeInProgress Outcome = "in_progress"
)

// Recorder receives submission measurements.
type Recorder interface {
	ObserveSubmit(site string, outcome Outcome, d time.Duration)
	ObserveInvalidField(site, field string)
}

// Option configures a Form.
type Option func(*Form)

// WithResetDelay sets how long a successful form stays Submitted.
// Non-positive values are ignored.
func WithResetDelay(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.resetDelay = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithMeta sets the submission origin copied into every Submission.
func WithMeta(m Meta) Option {
	return func(f *Form) {
		f.meta = m
	}
}

func WithObserver(o Observer) Option {
	return func(f *Form) {
		if o != nil {
			f.observers = append(f.observers, o)
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(f *Form) {
		if r != nil {
			f.recorder = r
		}
	}
}

// WithFailureMessage overrides the message stored under FieldSubmit when the
// submitter fails.
func WithFailureMessage(msg string) Option {
	return func(f *Form) {
		if msg != "" {
			f.failureMessage = msg
		}
	}
}

// WithClock replaces time.Now for submission timestamps.
func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		if now != nil {
			f.now = now
		}
	}
}

// WithIDGenerator replaces uuid.New for submission IDs.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(f *Form) {
		if gen != nil {
			f.newID = gen
		}
	}
}

type noopRecorder struct{}

func (noopRecorder) ObserveSubmit(string, Outcome, time.Duration) {}
func (noopRecorder) ObserveInvalidField(string, string)           {}
