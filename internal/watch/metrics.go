package watch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersSeenTotal tracks listings returned by polls.
	OrdersSeenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opensea_watch_orders_seen_total",
		Help: "Total number of listings returned by poll requests",
	})

	// NewOrdersTotal tracks listings emitted as new.
	NewOrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opensea_watch_new_orders_total",
		Help: "Total number of previously unseen listings emitted",
	})

	// PollDurationSeconds tracks poll latency.
	PollDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "opensea_watch_poll_duration_seconds",
		Help:    "Duration of listing poll requests",
		Buckets: prometheus.DefBuckets,
	})

	// PollErrorsTotal tracks poll failures.
	PollErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opensea_watch_poll_errors_total",
		Help: "Total number of listing poll failures",
	})
)
