package contact

import (
	"github.com/dmitrymomot/landkit/pkg/statemachine"
)

// Status is the lifecycle state of a Form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
	StatusFailed     Status = "failed"
)

// Name implements statemachine.State.
func (s Status) Name() string { return string(s) }

func (s Status) String() string { return string(s) }

// Editable reports whether the presentation should accept input and enable
// the submit control.
func (s Status) Editable() bool { return s != StatusSubmitting }

const (
	eventSubmit  = statemachine.StringEvent("submit")
	eventSucceed = statemachine.StringEvent("succeed")
	eventFail    = statemachine.StringEvent("fail")
	eventReset   = statemachine.StringEvent("reset")
)

func newMachine(observer statemachine.Observer) statemachine.StateMachine {
	opts := []statemachine.Option{
		statemachine.WithTransitions(
			statemachine.TransitionDef{From: StatusIdle, To: StatusSubmitting, Event: eventSubmit},
			statemachine.TransitionDef{From: StatusFailed, To: StatusSubmitting, Event: eventSubmit},
			statemachine.TransitionDef{From: StatusSubmitted, To: StatusSubmitting, Event: eventSubmit},
			statemachine.TransitionDef{From: StatusSubmitting, To: StatusSubmitted, Event: eventSucceed},
			statemachine.TransitionDef{From: StatusSubmitting, To: StatusFailed, Event: eventFail},
			statemachine.TransitionDef{From: StatusSubmitted, To: StatusIdle, Event: eventReset},
			statemachine.TransitionDef{From: StatusFailed, To: StatusIdle, Event: eventReset},
		),
	}
	if observer != nil {
		opts = append(opts, statemachine.WithObserver(observer))
	}
	return statemachine.MustNew(StatusIdle, opts...)
}

func statusOf(m statemachine.StateMachine) Status {
	if s, ok := m.Current().(Status); ok {
		return s
	}
	return StatusIdle
}
