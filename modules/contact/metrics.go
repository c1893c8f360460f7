package contact

import (
	"context"
	"time"

	contactsvc "github.com/dmitrymomot/landkit/svc/contact"
)

// Metrics receives the module's measurements. *metrics.Metrics satisfies it.
type Metrics interface {
	ObserveSubmit(site, outcome string, d time.Duration)
	ObserveInvalidField(site, field string)
	ObserveTransition(from, to string)
	ObserveRateLimited(route string)
	SetActiveForms(n int)
}

type nopMetrics struct{}

func (nopMetrics) ObserveSubmit(string, string, time.Duration) {}
func (nopMetrics) ObserveInvalidField(string, string)          {}
func (nopMetrics) ObserveTransition(string, string)            {}
func (nopMetrics) ObserveRateLimited(string)                   {}
func (nopMetrics) SetActiveForms(int)                          {}

// recorder adapts Metrics to contactsvc.Recorder.
type recorder struct {
	m Metrics
}

func (r recorder) ObserveSubmit(site string, outcome contactsvc.Outcome, d time.Duration) {
	r.m.ObserveSubmit(site, string(outcome), d)
}

func (r recorder) ObserveInvalidField(site, field string) {
	r.m.ObserveInvalidField(site, field)
}

func transitionObserver(m Metrics) contactsvc.Observer {
	return func(_ context.Context, from, to contactsvc.Status) {
		m.ObserveTransition(from.String(), to.String())
	}
}
