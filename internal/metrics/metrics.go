// Package metrics defines the Prometheus instrumentation for the service:
// HTTP request counters and the Gemini call counters/histograms recorded by
// the tutor adapter.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the service registers.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	GeminiRequestsTotal   *prometheus.CounterVec
	GeminiRequestDuration *prometheus.HistogramVec
}

// New registers and returns the service collectors on the default registry.
func New() *Metrics {
	return newWithRegisterer(prometheus.DefaultRegisterer)
}

// NewForTesting registers the collectors on a private registry so tests can
// construct metrics repeatedly without duplicate registration panics.
func NewForTesting() *Metrics {
	return newWithRegisterer(prometheus.NewRegistry())
}

func newWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tutor_api_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tutor_api_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"path"},
		),

		GeminiRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tutor_api_gemini_requests_total",
				Help: "Total number of Gemini API requests",
			},
			[]string{"operation", "model", "status"},
		),
		GeminiRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tutor_api_gemini_request_duration_seconds",
				Help:    "Gemini request duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"operation", "model"},
		),
	}
}

// ObserveGeminiRequest records one upstream call outcome.
func (m *Metrics) ObserveGeminiRequest(operation, model, status string, duration time.Duration) {
	m.GeminiRequestsTotal.WithLabelValues(operation, model, status).Inc()
	m.GeminiRequestDuration.WithLabelValues(operation, model).Observe(duration.Seconds())
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
