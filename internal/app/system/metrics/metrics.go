// internal/app/system/metrics/metrics.go
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
)

const namespace = "balesite"

// Metrics owns the site's collectors and the registry they live in. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	reg          *prometheus.Registry
	pageViews    *prometheus.CounterVec
	leads        *prometheus.CounterVec
	relayLatency *prometheus.HistogramVec
	rateLimited  *prometheus.CounterVec
	catalog      *prometheus.GaugeVec
}

// New registers every collector on a fresh registry, plus the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered pages by page type.",
		}, []string{"page"}),
		leads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lead_submissions_total",
			Help:      "Lead form submissions by form and result.",
		}, []string{"form", "result"}),
		relayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "relay_request_seconds",
			Help:      "Round trip of form relay calls.",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"form"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Form posts refused by the rate limiter.",
		}, []string{"form"}),
		catalog: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_entries",
			Help:      "Reference data loaded at startup.",
		}, []string{"kind"}),
	}
	m.reg.MustRegister(
		m.pageViews, m.leads, m.relayLatency, m.rateLimited, m.catalog,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// PageView counts one rendered page.
func (m *Metrics) PageView(page string) {
	if m == nil {
		return
	}
	m.pageViews.WithLabelValues(page).Inc()
}

// Lead counts one submission. latency is observed only when the relay
// was called.
func (m *Metrics) Lead(form, result string, latency time.Duration) {
	if m == nil {
		return
	}
	m.leads.WithLabelValues(form, result).Inc()
	if latency > 0 {
		m.relayLatency.WithLabelValues(form).Observe(latency.Seconds())
	}
}

// RateLimited counts one refused post.
func (m *Metrics) RateLimited(form string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(form).Inc()
}

// SetCatalog publishes the loaded catalog's sizes.
func (m *Metrics) SetCatalog(c catalog.Counts) {
	if m == nil {
		return
	}
	m.catalog.WithLabelValues("states").Set(float64(c.States))
	m.catalog.WithLabelValues("cities").Set(float64(c.Cities))
	m.catalog.WithLabelValues("pricing").Set(float64(c.Pricing))
}
