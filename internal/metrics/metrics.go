// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded for domain operations.
const (
	OutcomeOK        = "ok"
	OutcomeDenied    = "denied"
	OutcomeNotFound  = "not_found"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
	OutcomeAnonymous = "unauthenticated"
)

// MetricsCollector is used by the transport and usecase layers.
type MetricsCollector interface {
	RecordRequest(method, route string, status int, d time.Duration)
	RecordOperation(operation, outcome string)
	RecordReport(reportType, format string)
}

// Collector records metrics into a Prometheus registry.
type Collector struct {
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	operations *prometheus.CounterVec
	reports    *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "teamboard_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "teamboard_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "teamboard_operations_total",
			Help: "Task and member operations by outcome.",
		}, []string{"operation", "outcome"}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "teamboard_reports_generated_total",
			Help: "Rendered reports by type and format.",
		}, []string{"type", "format"}),
	}

	reg.MustRegister(c.requests, c.latency, c.operations, c.reports)
	return c
}

// RecordRequest records one served HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, d time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordOperation records the outcome of a domain operation.
func (c *Collector) RecordOperation(operation, outcome string) {
	c.operations.WithLabelValues(operation, outcome).Inc()
}

// RecordReport records a rendered report.
func (c *Collector) RecordReport(reportType, format string) {
	c.reports.WithLabelValues(reportType, format).Inc()
}

// Nop discards everything. Used when metrics are disabled.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordOperation(string, string)                   {}
func (Nop) RecordReport(string, string)                      {}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
