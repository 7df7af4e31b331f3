// Package metrics holds the Prometheus collectors for the deletion notifier.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// DeletionRequests counts dispatch calls by outcome ("sent", "invalid", "not_configured",
	// "auth_failed", "connection_failed", "failed").
	DeletionRequests *prometheus.CounterVec
	// EmailsSent counts individual sends by message kind and result ("ok", "error").
	EmailsSent *prometheus.CounterVec
	// SendDurationSecs observes the latency of individual sends.
	SendDurationSecs *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a Metrics instance registered on its own registry.
func New() *Metrics {
	m := &Metrics{
		DeletionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "account_deletion_requests_total",
			Help: "Total number of account deletion requests by outcome",
		}, []string{"outcome"}),
		EmailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "account_deletion_emails_total",
			Help: "Total number of email send attempts by message kind and result",
		}, []string{"kind", "result"}),
		SendDurationSecs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "account_deletion_email_send_duration_seconds",
			Help:    "Duration of a single email send in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.DeletionRequests,
		m.EmailsSent,
		m.SendDurationSecs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveSend records one send attempt.
func (m *Metrics) ObserveSend(kind string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.EmailsSent.WithLabelValues(kind, result).Inc()
	m.SendDurationSecs.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveRequest records the outcome of one dispatch call.
func (m *Metrics) ObserveRequest(outcome string) {
	m.DeletionRequests.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
