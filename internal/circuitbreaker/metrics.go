package circuitbreaker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CircuitBreakerClosed indicates whether polling is allowed.
	CircuitBreakerClosed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "opensea_circuit_breaker_closed",
		Help: "Whether the circuit breaker allows polling (1=closed, 0=open)",
	})

	// CircuitBreakerConsecutiveFailures tracks the current failure run.
	CircuitBreakerConsecutiveFailures = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "opensea_circuit_breaker_consecutive_failures",
		Help: "Current run of consecutive poll failures",
	})

	// CircuitBreakerTripsTotal counts threshold crossings.
	CircuitBreakerTripsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opensea_circuit_breaker_trips_total",
		Help: "Total number of times the circuit breaker opened",
	})

	// CircuitBreakerStateChanges counts open/close transitions.
	CircuitBreakerStateChanges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opensea_circuit_breaker_state_changes_total",
		Help: "Total number of times the circuit breaker changed state",
	})
)
