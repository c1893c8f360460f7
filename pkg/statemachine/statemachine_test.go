package statemachine_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landkit/pkg/statemachine"
)

const (
	idle       = statemachine.StringState("idle")
	submitting = statemachine.StringState("submitting")
	submitted  = statemachine.StringState("submitted")
	failed     = statemachine.StringState("failed")

	submit  = statemachine.StringEvent("submit")
	succeed = statemachine.StringEvent("succeed")
	fail    = statemachine.StringEvent("fail")
	reset   = statemachine.StringEvent("reset")
)

func newFormMachine(t *testing.T, opts ...statemachine.Option) statemachine.StateMachine {
	t.Helper()

	base := []statemachine.Option{
		statemachine.WithTransitions(
			statemachine.TransitionDef{From: idle, To: submitting, Event: submit},
			statemachine.TransitionDef{From: failed, To: submitting, Event: submit},
			statemachine.TransitionDef{From: submitting, To: submitted, Event: succeed},
			statemachine.TransitionDef{From: submitting, To: failed, Event: fail},
			statemachine.TransitionDef{From: submitted, To: idle, Event: reset},
			statemachine.TransitionDef{From: failed, To: idle, Event: reset},
		),
	}

	sm, err := statemachine.New(idle, append(base, opts...)...)
	require.NoError(t, err)
	return sm
}

func TestMachine_Fire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("walks the happy path", func(t *testing.T) {
		t.Parallel()

		sm := newFormMachine(t)
		assert.Equal(t, idle, sm.Current())

		require.NoError(t, sm.Fire(ctx, submit))
		assert.True(t, sm.Is(submitting))
		require.NoError(t, sm.Fire(ctx, succeed))
		assert.True(t, sm.Is(submitted))
		require.NoError(t, sm.Fire(ctx, reset))
		assert.True(t, sm.Is(idle))
	})

	t.Run("rejects undefined transitions", func(t *testing.T) {
		t.Parallel()

		sm := newFormMachine(t)
		err := sm.Fire(ctx, succeed)
		require.Error(t, err)
		assert.True(t, statemachine.IsNoTransition(err))
		assert.Contains(t, err.Error(), "no transition for succeed in state idle")
		assert.True(t, sm.Is(idle))
		assert.False(t, sm.CanFire(ctx, succeed))
		assert.True(t, sm.CanFire(ctx, submit))
	})

	t.Run("nil event", func(t *testing.T) {
		t.Parallel()

		sm := newFormMachine(t)
		assert.ErrorIs(t, sm.Fire(ctx, nil), statemachine.ErrInvalidEvent)
		assert.False(t, sm.CanFire(ctx, nil))
	})

	t.Run("reset returns to initial state", func(t *testing.T) {
		t.Parallel()

		sm := newFormMachine(t)
		require.NoError(t, sm.Fire(ctx, submit))
		sm.Reset()
		assert.True(t, sm.Is(idle))
	})
}

func TestMachine_Guards(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var allow atomic.Bool

	sm := statemachine.MustNew(idle,
		statemachine.WithTransitions(
			statemachine.TransitionDef{
				From: idle, To: submitting, Event: submit,
				Guard: func(context.Context, statemachine.State, statemachine.Event) bool { return allow.Load() },
			},
			statemachine.TransitionDef{From: idle, To: failed, Event: fail},
		),
	)

	err := sm.Fire(ctx, submit)
	var nte *statemachine.NoTransitionError
	require.ErrorAs(t, err, &nte)
	assert.True(t, nte.Rejected)
	assert.True(t, sm.Is(idle))

	allow.Store(true)
	require.NoError(t, sm.Fire(ctx, submit))
	assert.True(t, sm.Is(submitting))
}

func TestMachine_GuardBranching(t *testing.T) {
	t.Parallel()

	never := func(context.Context, statemachine.State, statemachine.Event) bool { return false }
	sm := statemachine.MustNew(submitting,
		statemachine.WithTransitions(
			statemachine.TransitionDef{From: submitting, To: submitted, Event: succeed, Guard: never},
			statemachine.TransitionDef{From: submitting, To: failed, Event: succeed},
		),
	)

	require.NoError(t, sm.Fire(context.Background(), succeed))
	assert.True(t, sm.Is(failed))
}

func TestMachine_Observer(t *testing.T) {
	t.Parallel()

	type step struct{ from, to, event string }
	var (
		mu    sync.Mutex
		steps []step
		sm    statemachine.StateMachine
	)
	sm = newFormMachine(t, statemachine.WithObserver(func(_ context.Context, from, to statemachine.State, evt statemachine.Event) {
		// Observers run outside the lock and may read the machine.
		assert.Equal(t, to, sm.Current())
		mu.Lock()
		steps = append(steps, step{from.Name(), to.Name(), evt.Name()})
		mu.Unlock()
	}))

	ctx := context.Background()
	require.NoError(t, sm.Fire(ctx, submit))
	require.NoError(t, sm.Fire(ctx, fail))
	require.Error(t, sm.Fire(ctx, succeed))

	assert.Equal(t, []step{
		{"idle", "submitting", "submit"},
		{"submitting", "failed", "fail"},
	}, steps)
}

func TestMachine_ConcurrentFireSingleWinner(t *testing.T) {
	t.Parallel()

	sm := newFormMachine(t)
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sm.Fire(context.Background(), submit) == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.True(t, sm.Is(submitting))
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New(nil)
	assert.ErrorIs(t, err, statemachine.ErrNilInitialState)

	_, err = statemachine.New(idle, statemachine.WithTransitions(
		statemachine.TransitionDef{From: idle, Event: submit},
	))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	assert.Panics(t, func() {
		statemachine.MustNew(idle, statemachine.WithTransitions(statemachine.TransitionDef{}))
	})
}
