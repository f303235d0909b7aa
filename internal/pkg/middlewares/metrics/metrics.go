package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gigboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests served by gigboard",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigboard_http_requests_total",
			Help: "Total number of HTTP requests served by gigboard",
		},
		[]string{"method", "route", "status_code"},
	)
)
