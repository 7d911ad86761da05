package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; evaluation is pure string work so the
	// interesting range sits well below one second.
	latencyBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "complygate_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "complygate_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"path"},
	)

	EvaluationTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "complygate_evaluations_total",
			Help: "Document evaluations by document type and overall verdict",
		},
		[]string{"document_type", "overall"},
	)

	ExtractionFailures = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "complygate_extraction_failures_total",
			Help: "Failed text extractions by source (url, ocr)",
		},
		[]string{"source"},
	)
)

// Initialize registers the runtime collectors. Called once by the server
// when metrics are enabled.
func Initialize() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Registry exposes the private registry for the metrics endpoint handler.
func Registry() *prometheus.Registry {
	return registry
}
