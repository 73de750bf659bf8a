// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics, labelled by route pattern (not raw path) to keep
	// cardinality bounded.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raahsetu_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "raahsetu_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "raahsetu_http_active_requests",
			Help: "Number of in-flight HTTP requests",
		},
	)

	// Database metrics
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raahsetu_db_queries_total",
			Help: "Total number of database statements by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	DBAcquireFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "raahsetu_db_acquire_failures_total",
			Help: "Connection acquisitions that failed",
		},
	)

	// Domain events
	SOSActivations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "raahsetu_sos_activations_total",
			Help: "SOS alerts raised",
		},
	)

	Signups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raahsetu_signups_total",
			Help: "Signup attempts by result",
		},
		[]string{"result"},
	)

	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raahsetu_logins_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)
)

// Outcome labels for DBQueriesTotal
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// ObserveQuery records one database statement.
func ObserveQuery(operation string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	DBQueriesTotal.WithLabelValues(operation, outcome).Inc()
}
