// Package metric provides Prometheus metrics for the ontology service.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains all service-level metrics.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Graph metrics
	GraphTriples *prometheus.GaugeVec

	// Validation metrics
	ValidationsTotal *prometheus.CounterVec
	LookupsTotal     *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a Metrics instance with all service metrics registered
// on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontoserve",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"endpoint", "code"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ontoserve",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request processing duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),

		GraphTriples: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ontoserve",
				Subsystem: "graph",
				Name:      "triples",
				Help:      "Number of triples in a loaded graph",
			},
			[]string{"graph"},
		),

		ValidationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontoserve",
				Subsystem: "validation",
				Name:      "total",
				Help:      "Validation runs by outcome (conforms, violations, parse_error)",
			},
			[]string{"outcome"},
		),

		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontoserve",
				Subsystem: "lookup",
				Name:      "total",
				Help:      "Verb lookups by outcome (mapped, unmapped, not_found)",
			},
			[]string{"outcome"},
		),

		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.GraphTriples,
		m.ValidationsTotal,
		m.LookupsTotal,
	)

	return m
}

// Handler returns the HTTP handler exposing the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(endpoint string, code string, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(endpoint, code).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
