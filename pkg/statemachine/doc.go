// Package statemachine implements a small finite state machine with guarded
// transitions and post-transition observers.
//
//	const (
//		Idle       = statemachine.StringState("idle")
//		Submitting = statemachine.StringState("submitting")
//		Submit     = statemachine.StringEvent("submit")
//	)
//
//	sm := statemachine.MustNew(Idle,
//		statemachine.WithTransitions(
//			statemachine.TransitionDef{From: Idle, To: Submitting, Event: Submit},
//		),
//		statemachine.WithObserver(func(ctx context.Context, from, to statemachine.State, _ statemachine.Event) {
//			log.Printf("%s -> %s", from.Name(), to.Name())
//		}),
//	)
//
//	err := sm.Fire(ctx, Submit)
//
// Fire calls are serialized. Observers run after the lock is released.
package statemachine
