package statemachine

import "fmt"

// Option configures a machine during construction.
type Option func(*machine) error

// New creates a machine in initial.
func New(initial State, opts ...Option) (StateMachine, error) {
	if initial == nil {
		return nil, ErrNilInitialState
	}
	m := &machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[string]map[string][]TransitionDef),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(initial State, opts ...Option) StateMachine {
	sm, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return sm
}

// WithTransitions registers transitions in order. For the same state and
// event, earlier definitions are tried first.
func WithTransitions(defs ...TransitionDef) Option {
	return func(m *machine) error {
		for i, t := range defs {
			if err := m.add(t); err != nil {
				return fmt.Errorf("transition %d: %w", i, err)
			}
		}
		return nil
	}
}

// WithObserver registers a callback invoked after every committed transition.
func WithObserver(observer Observer) Option {
	return func(m *machine) error {
		if observer != nil {
			m.observers = append(m.observers, observer)
		}
		return nil
	}
}
