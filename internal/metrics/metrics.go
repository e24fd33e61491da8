// Package metrics defines the service's Prometheus instrumentation.  Metrics
// live in a standalone package to avoid import cycles between the store and
// HTTP packages.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by path and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "visitcounter",
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests by path and status code",
	}, []string{"path", "status"})

	// RequestDuration observes handler wall-clock time in seconds.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "visitcounter",
		Name:      "http_request_duration_seconds",
		Help:      "Handler wall-clock time in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})

	// VisitsRecorded counts successful counter increments.
	VisitsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "visitcounter",
		Name:      "visits_recorded_total",
		Help:      "Successful visit counter increments",
	})

	// BackendUp reports the result of the most recent liveness probe
	// (1=reachable, 0=unreachable).
	BackendUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "visitcounter",
		Name:      "backend_up",
		Help:      "Result of the most recent backend liveness probe",
	})
)
