package opensea

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks API requests by operation.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opensea_client_requests_total",
			Help: "Total number of OpenSea API requests issued",
		},
		[]string{"operation"},
	)

	// RequestErrorsTotal tracks failed API requests.
	RequestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opensea_client_request_errors_total",
			Help: "Total number of OpenSea API requests that failed",
		},
		[]string{"operation", "reason"},
	)

	// RequestDurationSeconds tracks request latency.
	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "opensea_client_request_duration_seconds",
			Help:    "Duration of OpenSea API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
