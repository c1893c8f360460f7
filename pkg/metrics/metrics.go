// Package metrics exposes Prometheus collectors for the landing sites.
//
// Collectors are registered on a private registry so tests and multiple
// servers in one process do not collide:
//
//	m := metrics.New("landkit")
//	r.Handle("/metrics", m.Handler())
//	m.ObserveSubmit("payflow", "succeeded", time.Second)
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector used by the application.
type Metrics struct {
	registry *prometheus.Registry

	submissions   *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	invalidFields *prometheus.CounterVec
	transitions   *prometheus.CounterVec
	rateLimited   *prometheus.CounterVec
	activeForms   prometheus.Gauge
	pageViews     *prometheus.CounterVec
}

// Config controls metrics exposure.
type Config struct {
	Enabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path      string `env:"METRICS_PATH" envDefault:"/metrics"`
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"landkit"`
}

// New creates collectors under namespace. Go runtime and process collectors
// are included.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		submissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submit attempts by outcome",
		}, []string{"site", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submission_duration_seconds",
			Help:      "Time spent delivering a contact submission",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"site", "outcome"}),
		invalidFields: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "invalid_fields_total",
			Help:      "Validation failures per form field",
		}, []string{"site", "field"}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "transitions_total",
			Help:      "Contact form status transitions",
		}, []string{"from", "to"}),
		rateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}, []string{"route"}),
		activeForms: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "active_forms",
			Help:      "Form instances currently held in memory",
		}),
		pageViews: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "site",
			Name:      "page_views_total",
			Help:      "Rendered landing pages",
		}, []string{"site"}),
	}
}

// ObserveSubmit counts a submit attempt. Durations are recorded only for
// attempts that reached the submitter.
func (m *Metrics) ObserveSubmit(site, outcome string, d time.Duration) {
	m.submissions.WithLabelValues(site, outcome).Inc()
	if d > 0 {
		m.duration.WithLabelValues(site, outcome).Observe(d.Seconds())
	}
}

func (m *Metrics) ObserveInvalidField(site, field string) {
	m.invalidFields.WithLabelValues(site, field).Inc()
}

func (m *Metrics) ObserveTransition(from, to string) {
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) ObserveRateLimited(route string) {
	m.rateLimited.WithLabelValues(route).Inc()
}

func (m *Metrics) ObservePageView(site string) {
	m.pageViews.WithLabelValues(site).Inc()
}

// SetActiveForms reports the number of live form instances.
func (m *Metrics) SetActiveForms(n int) {
	m.activeForms.Set(float64(n))
}

// Registry exposes the underlying registry for custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
