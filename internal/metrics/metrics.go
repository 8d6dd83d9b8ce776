package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dipii"

// Document kinds used as label values.
const (
	DocumentCertificate = "certificate"
	DocumentLabelBatch  = "label_batch"
)

type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	documents *prometheus.CounterVec
	failures  *prometheus.CounterVec
	labels    prometheus.Counter
}

// New builds a private registry so tests can create as many as they need.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_generated_total",
			Help:      "PDF documents rendered and stored.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_failures_total",
			Help:      "PDF documents that could not be rendered or stored.",
		}, []string{"kind", "stage"}),
		labels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "labels_generated_total",
			Help:      "Label cards rendered across all label batches.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.documents, m.failures, m.labels,
	)

	return m
}

func (m *Metrics) ObserveRequest(route, method, status string, seconds float64) {
	m.requests.WithLabelValues(route, method, status).Inc()
	m.duration.WithLabelValues(route, method).Observe(seconds)
}

func (m *Metrics) DocumentGenerated(kind string) {
	m.documents.WithLabelValues(kind).Inc()
}

// DocumentFailed records a failure at the "render" or "store" stage.
func (m *Metrics) DocumentFailed(kind, stage string) {
	m.failures.WithLabelValues(kind, stage).Inc()
}

func (m *Metrics) LabelsGenerated(n int) {
	m.labels.Add(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
