package statemachine

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInvalidTransition = errors.New("statemachine: transition needs from, to and event")
	ErrInvalidEvent      = errors.New("statemachine: nil event")
	ErrNilInitialState   = errors.New("statemachine: nil initial state")
)

// State is anything with a stable name.
type State interface {
	Name() string
}

// Event triggers a transition.
type Event interface {
	Name() string
}

// Guard allows or vetoes a transition at fire time.
type Guard func(ctx context.Context, from State, event Event) bool

// Observer is notified after a transition has been committed.
// It runs outside the machine lock, so it may read Current.
type Observer func(ctx context.Context, from, to State, event Event)

// StateMachine is a finite state machine safe for concurrent use.
type StateMachine interface {
	Current() State
	Is(state State) bool
	Fire(ctx context.Context, event Event) error
	CanFire(ctx context.Context, event Event) bool
	Reset()
}

type StringState string

func (s StringState) Name() string { return string(s) }

type StringEvent string

func (e StringEvent) Name() string { return string(e) }

// TransitionDef declares that event moves the machine from From to To.
// A nil Guard always passes.
type TransitionDef struct {
	From  State
	To    State
	Event Event
	Guard Guard
}

// NoTransitionError is returned by Fire when the current state has no
// transition for the event, or every candidate was vetoed by its guard.
type NoTransitionError struct {
	State    string
	Event    string
	Rejected bool
}

func (e *NoTransitionError) Error() string {
	if e.Rejected {
		return fmt.Sprintf("statemachine: %s on %s rejected by guard", e.Event, e.State)
	}
	return fmt.Sprintf("statemachine: no transition for %s in state %s", e.Event, e.State)
}

// IsNoTransition reports whether err is a *NoTransitionError.
func IsNoTransition(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}

type machine struct {
	mu          sync.RWMutex
	initial     State
	current     State
	transitions map[string]map[string][]TransitionDef // from -> event -> candidates
	observers   []Observer
}

// Current returns the state the machine is in.
func (m *machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is compares state names, so distinct State types with equal names match.
func (m *machine) Is(state State) bool {
	return state != nil && m.Current().Name() == state.Name()
}

// Fire takes the first transition for event whose guard passes.
func (m *machine) Fire(ctx context.Context, event Event) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	t, err := m.match(ctx, event)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = t.To
	observers := m.observers
	m.mu.Unlock()

	for _, observe := range observers {
		observe(ctx, from, t.To, event)
	}
	return nil
}

func (m *machine) CanFire(ctx context.Context, event Event) bool {
	if event == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.match(ctx, event)
	return err == nil
}

// Reset returns to the initial state without notifying observers.
func (m *machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// match must be called with the lock held.
func (m *machine) match(ctx context.Context, event Event) (TransitionDef, error) {
	state := m.current.Name()
	candidates := m.transitions[state][event.Name()]
	if len(candidates) == 0 {
		return TransitionDef{}, &NoTransitionError{State: state, Event: event.Name()}
	}
	for _, t := range candidates {
		if t.Guard == nil || t.Guard(ctx, m.current, event) {
			return t, nil
		}
	}
	return TransitionDef{}, &NoTransitionError{State: state, Event: event.Name(), Rejected: true}
}

func (m *machine) add(t TransitionDef) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}
	byEvent, ok := m.transitions[t.From.Name()]
	if !ok {
		byEvent = make(map[string][]TransitionDef)
		m.transitions[t.From.Name()] = byEvent
	}
	byEvent[t.Event.Name()] = append(byEvent[t.Event.Name()], t)
	return nil
}
