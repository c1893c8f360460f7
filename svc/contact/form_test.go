package contact_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landkit/pkg/requestid"
	"github.com/dmitrymomot/landkit/pkg/validator"
	"github.com/dmitrymomot/landkit/svc/contact"
)

// recordingSubmitter counts calls and captures the last submission.
type recordingSubmitter struct {
	mu    sync.Mutex
	calls int
	last  contact.Submission
	ctx   context.Context
	err   error
}

func (r *recordingSubmitter) Submit(ctx context.Context, sub contact.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.last = sub
	r.ctx = ctx
	return r.err
}

func (r *recordingSubmitter) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func fillValid(f *contact.Form) {
	f.Change(contact.FieldName, "Jordan Lee")
	f.Change(contact.FieldEmail, "jordan@example.com")
	f.Change(contact.FieldMessage, "Please contact me about pricing options.")
}

func TestNewForm(t *testing.T) {
	t.Parallel()

	form := contact.NewForm(&recordingSubmitter{})
	defer form.Close()

	st := form.State()
	assert.Equal(t, contact.StatusIdle, st.Status)
	assert.Equal(t, contact.InitialFields(), st.Fields)
	assert.Empty(t, st.Errors)
}

func TestForm_Change(t *testing.T) {
	t.Parallel()

	t.Run("sanitizes values", func(t *testing.T) {
		t.Parallel()
		form := contact.NewForm(&recordingSubmitter{})
		defer form.Close()

		form.Change(contact.FieldName, "  <b>Jordan</b>  ")
		form.Change(contact.FieldCompany, 42)

		st := form.State()
		assert.Equal(t, "bJordan/b", st.Fields[contact.FieldName])
		assert.Equal(t, "", st.Fields[contact.FieldCompany])
	})

	t.Run("clears only the edited field error", func(t *testing.T) {
		t.Parallel()
		form := contact.NewForm(&recordingSubmitter{})
		defer form.Close()

		require.ErrorIs(t, form.Submit(context.Background()), contact.ErrInvalidFields)
		require.Len(t, form.State().Errors, 3)

		form.Change(contact.FieldName, "J")
		errs := form.State().Errors
		assert.NotContains(t, errs, contact.FieldName)
		assert.Contains(t, errs, contact.FieldEmail)
		assert.Contains(t, errs, contact.FieldMessage)
	})

	t.Run("edit after failure returns to idle", func(t *testing.T) {
		t.Parallel()
		form := contact.NewForm(&recordingSubmitter{err: errors.New("down")})
		defer form.Close()
		fillValid(form)

		require.ErrorIs(t, form.Submit(context.Background()), contact.ErrSubmissionFailed)
		require.Equal(t, contact.StatusFailed, form.Status())

		form.Change(contact.FieldCompany, "Acme")
		st := form.State()
		assert.Equal(t, contact.StatusIdle, st.Status)
		assert.NotContains(t, st.Errors, contact.FieldSubmit)
		assert.Equal(t, "Jordan Lee", st.Fields[contact.FieldName])
	})

	t.Run("ignores names outside the form", func(t *testing.T) {
		t.Parallel()
		sub := &recordingSubmitter{}
		form := contact.NewForm(sub)
		defer form.Close()

		form.Change(contact.FieldSubmit, "x")
		form.Change("bogus", "value")
		assert.Equal(t, contact.InitialFields(), form.State().Fields)

		fillValid(form)
		require.NoError(t, form.Submit(context.Background()))
		assert.NotContains(t, sub.last.Fields, contact.FieldSubmit)
		assert.NotContains(t, sub.last.Fields, "bogus")
		assert.Len(t, sub.last.Fields, 5)
	})

	t.Run("empty interest keeps the default", func(t *testing.T) {
		t.Parallel()
		form := contact.NewForm(&recordingSubmitter{})
		defer form.Close()

		form.Change(contact.FieldInterest, "demo")
		form.Change(contact.FieldInterest, "  ")
		assert.Equal(t, string(contact.DefaultInterest), form.State().Fields[contact.FieldInterest])
	})
}

func TestForm_Submit_InvalidFields(t *testing.T) {
	t.Parallel()

	sub := &recordingSubmitter{}
	form := contact.NewForm(sub)
	defer form.Close()

	form.Change(contact.FieldName, "J")
	form.Change(contact.FieldEmail, "bad")
	form.Change(contact.FieldMessage, "short")

	err := form.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, contact.ErrInvalidFields)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)

	verrs := validator.ExtractValidationErrors(err)
	assert.ElementsMatch(t, []string{"name", "email", "message"}, verrs.Fields())

	st := form.State()
	assert.Equal(t, contact.StatusIdle, st.Status)
	assert.Contains(t, st.Errors[contact.FieldName], "at least 2")
	assert.Contains(t, st.Errors[contact.FieldEmail], "valid email")
	assert.Contains(t, st.Errors[contact.FieldMessage], "at least 10 characters")
	assert.Equal(t, 0, sub.Calls())
}

func TestForm_Submit_Success(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c2f4e-4c65-4c53-9f0e-0e6e7d3b2a11")
	at := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	var mu sync.Mutex
	var transitions []string
	sub := &recordingSubmitter{}
	form := contact.NewForm(sub,
		contact.WithMeta(contact.Meta{Site: "payflow", IP: "203.0.113.7"}),
		contact.WithIDGenerator(func() uuid.UUID { return id }),
		contact.WithClock(func() time.Time { return at }),
		contact.WithResetDelay(time.Hour),
		contact.WithObserver(func(_ context.Context, from, to contact.Status) {
			mu.Lock()
			transitions = append(transitions, from.String()+"->"+to.String())
			mu.Unlock()
		}),
	)
	defer form.Close()

	fillValid(form)
	form.Change(contact.FieldInterest, "pricing")

	ctx := requestid.WithContext(context.Background(), "req-123")
	require.NoError(t, form.Submit(ctx))

	st := form.State()
	assert.Equal(t, contact.StatusSubmitted, st.Status)
	assert.Equal(t, contact.InitialFields(), st.Fields)
	assert.Empty(t, st.Errors)

	require.Equal(t, 1, sub.Calls())
	assert.Equal(t, id, sub.last.ID)
	assert.Equal(t, at, sub.last.SubmittedAt)
	assert.Equal(t, "Jordan Lee", sub.last.Fields[contact.FieldName])
	assert.Equal(t, contact.InterestPricing, sub.last.Interest())
	assert.Equal(t, contact.Meta{Site: "payflow", IP: "203.0.113.7", RequestID: "req-123"}, sub.last.Meta)

	mu.Lock()
	assert.Equal(t, []string{"idle->submitting", "submitting->submitted"}, transitions)
	mu.Unlock()
}

func TestForm_Submit_Failure(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	sub := &recordingSubmitter{err: cause}
	form := contact.NewForm(sub)
	defer form.Close()
	fillValid(form)

	err := form.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, contact.ErrSubmissionFailed)
	assert.ErrorIs(t, err, cause)

	st := form.State()
	assert.Equal(t, contact.StatusFailed, st.Status)
	assert.Equal(t, contact.DefaultFailureMessage, st.Errors[contact.FieldSubmit])
	assert.Equal(t, "Jordan Lee", st.Fields[contact.FieldName])
	assert.Equal(t, "jordan@example.com", st.Fields[contact.FieldEmail])

	// resubmission is allowed straight from Failed
	sub.mu.Lock()
	sub.err = nil
	sub.mu.Unlock()
	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, contact.StatusSubmitted, form.Status())
	assert.Equal(t, 2, sub.Calls())
}

func TestForm_Submit_CustomFailureMessage(t *testing.T) {
	t.Parallel()

	form := contact.NewForm(&recordingSubmitter{err: errors.New("x")},
		contact.WithFailureMessage("Try again later"))
	defer form.Close()
	fillValid(form)

	_ = form.Submit(context.Background())
	assert.Equal(t, "Try again later", form.State().Errors[contact.FieldSubmit])
}

func TestForm_Submit_NilSubmitter(t *testing.T) {
	t.Parallel()

	form := contact.NewForm(nil)
	defer form.Close()
	fillValid(form)

	err := form.Submit(context.Background())
	assert.ErrorIs(t, err, contact.ErrSubmissionFailed)
	assert.ErrorIs(t, err, contact.ErrNoSubmitter)
	assert.Equal(t, contact.StatusFailed, form.Status())
}

func TestForm_Submit_MutualExclusion(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var calls atomic.Int32
	blocking := contact.SubmitterFunc(func(ctx context.Context, _ contact.Submission) error {
		calls.Add(1)
		<-release
		return nil
	})

	form := contact.NewForm(blocking, contact.WithResetDelay(time.Hour))
	defer form.Close()
	fillValid(form)

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()

	require.Eventually(t, func() bool {
		return form.Status() == contact.StatusSubmitting
	}, time.Second, time.Millisecond)

	assert.Empty(t, form.State().Errors)
	assert.False(t, form.Status().Editable())

	for range 5 {
		assert.ErrorIs(t, form.Submit(context.Background()), contact.ErrSubmissionInProgress)
	}

	// edits are ignored while submitting
	form.Change(contact.FieldName, "Someone Else")

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, contact.StatusSubmitted, form.Status())
}

func TestForm_Submit_DetachedContext(t *testing.T) {
	t.Parallel()

	var ctxErr error
	submitter := contact.SubmitterFunc(func(ctx context.Context, _ contact.Submission) error {
		ctxErr = ctx.Err()
		return nil
	})

	form := contact.NewForm(submitter)
	defer form.Close()
	fillValid(form)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, form.Submit(ctx))
	assert.NoError(t, ctxErr)
}

func TestForm_AutoReset(t *testing.T) {
	t.Parallel()

	form := contact.NewForm(&recordingSubmitter{}, contact.WithResetDelay(20*time.Millisecond))
	defer form.Close()
	fillValid(form)

	require.NoError(t, form.Submit(context.Background()))
	require.Equal(t, contact.StatusSubmitted, form.Status())

	assert.Eventually(t, func() bool {
		return form.Status() == contact.StatusIdle
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, contact.InitialFields(), form.State().Fields)
}

func TestForm_Close(t *testing.T) {
	t.Parallel()

	t.Run("stops pending reset", func(t *testing.T) {
		t.Parallel()
		form := contact.NewForm(&recordingSubmitter{}, contact.WithResetDelay(10*time.Millisecond))
		fillValid(form)
		require.NoError(t, form.Submit(context.Background()))

		form.Close()
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, contact.StatusSubmitted, form.Status())
	})

	t.Run("rejects further submits", func(t *testing.T) {
		t.Parallel()
		sub := &recordingSubmitter{}
		form := contact.NewForm(sub)
		fillValid(form)
		form.Close()
		form.Close()

		assert.ErrorIs(t, form.Submit(context.Background()), contact.ErrFormClosed)
		assert.Equal(t, 0, sub.Calls())
	})
}

func TestForm_InvalidSubmitAfterSuccess(t *testing.T) {
	t.Parallel()

	form := contact.NewForm(&recordingSubmitter{}, contact.WithResetDelay(time.Hour))
	defer form.Close()
	fillValid(form)
	require.NoError(t, form.Submit(context.Background()))

	// fields were reset, so a second submit is invalid and lands in Idle
	require.ErrorIs(t, form.Submit(context.Background()), contact.ErrInvalidFields)
	assert.Equal(t, contact.StatusIdle, form.Status())
}

type countingRecorder struct {
	mu       sync.Mutex
	outcomes []contact.Outcome
	invalid  []string
}

func (r *countingRecorder) ObserveSubmit(site string, outcome contact.Outcome, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *countingRecorder) ObserveInvalidField(_, field string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalid = append(r.invalid, field)
}

func TestForm_Recorder(t *testing.T) {
	t.Parallel()

	rec := &countingRecorder{}
	sub := &recordingSubmitter{}
	form := contact.NewForm(sub, contact.WithRecorder(rec), contact.WithResetDelay(time.Hour))
	defer form.Close()

	_ = form.Submit(context.Background())
	fillValid(form)
	_ = form.Submit(context.Background())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []contact.Outcome{contact.OutcomeInvalid, contact.OutcomeSucceeded}, rec.outcomes)
	assert.ElementsMatch(t, []string{"name", "email", "message"}, rec.invalid)
}
