package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/landkit/pkg/logger"
	"github.com/dmitrymomot/landkit/pkg/requestid"
	"github.com/dmitrymomot/landkit/pkg/sanitizer"
	"github.com/dmitrymomot/landkit/pkg/statemachine"
)

// State is a snapshot of a Form for presentation.
type State struct {
	Fields Fields `json:"fields"`
	Errors Errors `json:"errors"`
	Status Status `json:"status"`
}

// Form holds the state of one mounted contact form.
// It is safe for concurrent use.
type Form struct {
	mu        sync.Mutex
	fields    Fields
	errors    Errors
	machine   statemachine.StateMachine
	submitter Submitter

	resetDelay time.Duration
	resetTimer *time.Timer
	generation uint64
	closed     bool

	meta           Meta
	failureMessage string
	observers      []Observer
	recorder       Recorder
	logger         *slog.Logger
	now            func() time.Time
	newID          func() uuid.UUID
}

// NewForm creates an Idle form with initial fields.
// A nil submitter makes every valid Submit fail with ErrNoSubmitter.
func NewForm(submitter Submitter, opts ...Option) *Form {
	f := &Form{
		fields:         InitialFields(),
		errors:         Errors{},
		submitter:      submitter,
		resetDelay:     DefaultResetDelay,
		failureMessage: DefaultFailureMessage,
		recorder:       noopRecorder{},
		logger:         slog.New(slog.DiscardHandler),
		now:            time.Now,
		newID:          uuid.New,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logger.Component("contact"), logger.Site(f.meta.Site))
	f.machine = newMachine(f.notify)
	return f
}

// Change sanitizes raw and stores it under field. The field's own error and
// the submit error are cleared; other field errors stay. A Failed form goes
// back to Idle. Edits while Submitting and names that are not form inputs are
// ignored. An empty interest falls back to DefaultInterest.
func (f *Form) Change(field string, raw any) {
	if !IsFormField(field) {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.machine.Is(StatusSubmitting) {
		return
	}

	value := sanitizer.Field(raw)
	if field == FieldInterest && value == "" {
		value = string(DefaultInterest)
	}
	f.fields[field] = value
	delete(f.errors, field)
	delete(f.errors, FieldSubmit)

	if f.machine.Is(StatusFailed) {
		_ = f.machine.Fire(context.Background(), eventReset)
	}
}

// Submit validates the fields and, when valid, delivers them to the submitter.
//
// It returns ErrSubmissionInProgress while another Submit is running, an error
// matching ErrInvalidFields (and validator.ErrValidationFailed) when
// validation fails, and an error matching ErrSubmissionFailed when the
// submitter fails. The submitter runs on a context detached from ctx
// cancellation so an accepted submission always completes.
func (f *Form) Submit(ctx context.Context) error {
	start := f.now()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	if f.machine.Is(StatusSubmitting) {
		f.mu.Unlock()
		f.recorder.ObserveSubmit(f.meta.Site, OutcomeInProgress, 0)
		return ErrSubmissionInProgress
	}

	f.stopResetLocked()

	if verrs := validate(f.fields); !verrs.IsEmpty() {
		f.errors = Errors(verrs.Map())
		if !f.machine.Is(StatusIdle) {
			_ = f.machine.Fire(ctx, eventReset)
		}
		f.mu.Unlock()

		fields := verrs.Fields()
		for _, field := range fields {
			f.recorder.ObserveInvalidField(f.meta.Site, field)
		}
		f.recorder.ObserveSubmit(f.meta.Site, OutcomeInvalid, f.now().Sub(start))
		f.logger.DebugContext(ctx, "contact form rejected", logger.Fields(fields...))
		return fmt.Errorf("%w: %w", ErrInvalidFields, verrs)
	}

	if err := f.machine.Fire(ctx, eventSubmit); err != nil {
		f.mu.Unlock()
		return err
	}
	f.errors = Errors{}

	sub := Submission{
		ID:          f.newID(),
		Fields:      f.fields.Clone(),
		Meta:        f.meta,
		SubmittedAt: f.now().UTC(),
	}
	if sub.Meta.RequestID == "" {
		sub.Meta.RequestID = requestid.FromContext(ctx)
	}
	submitter := f.submitter
	f.mu.Unlock()

	var err error
	if submitter == nil {
		err = ErrNoSubmitter
	} else {
		err = submitter.Submit(context.WithoutCancel(ctx), sub)
	}

	f.mu.Lock()
	if err != nil {
		_ = f.machine.Fire(ctx, eventFail)
		f.errors = Errors{FieldSubmit: f.failureMessage}
	} else {
		_ = f.machine.Fire(ctx, eventSucceed)
		f.fields = InitialFields()
		f.errors = Errors{}
		f.scheduleResetLocked()
	}
	f.mu.Unlock()

	elapsed := f.now().Sub(start)
	if err != nil {
		f.recorder.ObserveSubmit(f.meta.Site, OutcomeFailed, elapsed)
		f.logger.ErrorContext(ctx, "contact submission failed",
			logger.SubmissionID(sub.ID),
			logger.RequestID(sub.Meta.RequestID),
			logger.Duration(elapsed),
			logger.Error(err),
		)
		return errors.Join(ErrSubmissionFailed, err)
	}

	f.recorder.ObserveSubmit(f.meta.Site, OutcomeSucceeded, elapsed)
	f.logger.InfoContext(ctx, "contact submission delivered",
		logger.SubmissionID(sub.ID),
		logger.RequestID(sub.Meta.RequestID),
		logger.Duration(elapsed),
	)
	return nil
}

// State returns a deep copy of the current form state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Fields: f.fields.Clone(),
		Errors: f.errors.Clone(),
		Status: statusOf(f.machine),
	}
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return statusOf(f.machine)
}

// Meta returns the origin attached to submissions.
func (f *Form) Meta() Meta {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.meta
}

// Close stops the pending auto reset. Subsequent calls to Submit return
// ErrFormClosed and Change becomes a no-op. Close is idempotent.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.stopResetLocked()
}

func (f *Form) scheduleResetLocked() {
	f.generation++
	gen := f.generation
	f.resetTimer = time.AfterFunc(f.resetDelay, func() {
		f.autoReset(gen)
	})
}

// stopResetLocked also invalidates a timer that already fired but has not
// acquired the lock yet.
func (f *Form) stopResetLocked() {
	f.generation++
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

func (f *Form) autoReset(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.generation || !f.machine.Is(StatusSubmitted) {
		return
	}
	f.resetTimer = nil
	_ = f.machine.Fire(context.Background(), eventReset)
}

// notify adapts machine transitions to Form observers. It runs under f.mu.
func (f *Form) notify(ctx context.Context, from, to statemachine.State, _ statemachine.Event) {
	fs, _ := from.(Status)
	ts, _ := to.(Status)
	f.logger.DebugContext(ctx, "contact form transition",
		slog.String("from", fs.String()),
		logger.Status(ts),
	)
	for _, o := range f.observers {
		o(ctx, fs, ts)
	}
}
