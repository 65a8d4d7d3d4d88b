// Package metrics holds the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schooloffice_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schooloffice_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schooloffice_payments_recorded_total",
		Help: "Payments recorded against invoices, by method and status.",
	}, []string{"method", "status"})

	BookCirculation = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schooloffice_book_circulation_total",
		Help: "Library issue and return events, by outcome.",
	}, []string{"event"})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schooloffice_emails_total",
		Help: "Outgoing emails, by final status.",
	}, []string{"status"})

	RecordWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schooloffice_record_writes_total",
		Help: "Generic record module writes, by resource and operation.",
	}, []string{"resource", "op"})
)
