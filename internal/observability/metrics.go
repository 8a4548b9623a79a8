package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus counters and histograms for the API surface
// and the model provider. All methods are nil-safe so callers can run
// without a collector wired in.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec

	llmRequests *prometheus.CounterVec
	llmLatency  *prometheus.HistogramVec

	deckGenerations *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	apiRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sprintslides_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)
	apiLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sprintslides_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)
	llmRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sprintslides_llm_requests_total",
			Help: "Model provider attempts by model and outcome status",
		},
		[]string{"model", "status"},
	)
	llmLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sprintslides_llm_request_duration_seconds",
			Help:    "Model provider attempt latency by model",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 15, 25, 40},
		},
		[]string{"model"},
	)
	deckGenerations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sprintslides_deck_generations_total",
			Help: "Deck generation outcomes by status",
		},
		[]string{"status"},
	)

	registry.MustRegister(apiRequests, apiLatency, llmRequests, llmLatency, deckGenerations)

	return &Metrics{
		registry:        registry,
		apiRequests:     apiRequests,
		apiLatency:      apiLatency,
		llmRequests:     llmRequests,
		llmLatency:      llmLatency,
		deckGenerations: deckGenerations,
	}
}

// ObserveAPIRequest records one finished HTTP request.
func (m *Metrics) ObserveAPIRequest(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

// ObserveLLMRequest records one provider attempt. Status is the HTTP status
// code as text, or "error" when no status is known.
func (m *Metrics) ObserveLLMRequest(model, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(model, status).Inc()
	m.llmLatency.WithLabelValues(model).Observe(dur.Seconds())
}

// ObserveDeckGeneration records a finished generation with outcome "ok" or
// the failure kind.
func (m *Metrics) ObserveDeckGeneration(status string) {
	if m == nil {
		return
	}
	m.deckGenerations.WithLabelValues(status).Inc()
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
