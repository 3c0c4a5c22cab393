// Package circuitbreaker suspends polling against a failing upstream and
// probes for recovery after a cooldown.
package circuitbreaker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// PollCircuitBreaker counts consecutive upstream failures. After a
// configured run of failures it opens and polls stop; once the cooldown
// has passed a single probe is let through, and its outcome decides
// whether the breaker closes again or the cooldown restarts.
type PollCircuitBreaker struct {
	closed atomic.Bool // Atomic for lock-free reads on the hot path

	failureThreshold int
	cooldown         time.Duration
	logger           *zap.Logger

	// Protected by mutex
	mu                  sync.Mutex
	consecutiveFailures int
	lastFailure         time.Time
	openedAt            time.Time
	probing             bool
}

// Config holds circuit breaker configuration.
type Config struct {
	FailureThreshold int           // Consecutive failures before opening
	Cooldown         time.Duration // How long to stay open before probing
	Logger           *zap.Logger
}

// Status holds current circuit breaker status for debugging.
type Status struct {
	Closed              bool
	ConsecutiveFailures int
	LastFailure         time.Time
	OpenedAt            time.Time
}

// New creates a new circuit breaker with the given configuration.
func New(cfg *Config) (*PollCircuitBreaker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.FailureThreshold <= 0 {
		return nil, fmt.Errorf("failure threshold must be positive")
	}
	if cfg.Cooldown <= 0 {
		return nil, fmt.Errorf("cooldown must be positive")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	breaker := &PollCircuitBreaker{
		failureThreshold: cfg.FailureThreshold,
		cooldown:         cfg.Cooldown,
		logger:           cfg.Logger,
	}

	// Start closed
	breaker.closed.Store(true)

	// Initialize metrics
	CircuitBreakerClosed.Set(1)
	CircuitBreakerConsecutiveFailures.Set(0)

	return breaker, nil
}

// Allow reports whether a poll may run now. While the breaker is closed
// this is lock-free and safe to call from hot paths; while open it lets
// exactly one probe through per elapsed cooldown.
func (b *PollCircuitBreaker) Allow() bool {
	if b.closed.Load() {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if time.Since(b.openedAt) < b.cooldown {
		return false
	}
	if b.probing {
		return false
	}

	b.probing = true
	b.logger.Info("circuit-breaker-probing",
		zap.Duration("open-for", time.Since(b.openedAt)))

	return true
}

// RecordSuccess resets the failure run and closes an open breaker.
func (b *PollCircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.consecutiveFailures = 0
	b.probing = false
	CircuitBreakerConsecutiveFailures.Set(0)

	if !b.closed.Load() {
		b.closed.Store(true)
		CircuitBreakerClosed.Set(1)
		CircuitBreakerStateChanges.Inc()

		b.logger.Info("circuit-breaker-closed",
			zap.Duration("open-for", time.Since(b.openedAt)))
	}
}

// RecordFailure extends the failure run. Crossing the threshold opens
// the breaker, a failed probe restarts the cooldown.
func (b *PollCircuitBreaker) RecordFailure(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.consecutiveFailures++
	b.lastFailure = time.Now()
	CircuitBreakerConsecutiveFailures.Set(float64(b.consecutiveFailures))

	if b.closed.Load() {
		if b.consecutiveFailures < b.failureThreshold {
			return
		}

		b.closed.Store(false)
		b.openedAt = time.Now()
		CircuitBreakerClosed.Set(0)
		CircuitBreakerStateChanges.Inc()
		CircuitBreakerTripsTotal.Inc()

		b.logger.Warn("circuit-breaker-opened",
			zap.Int("consecutive-failures", b.consecutiveFailures),
			zap.Duration("cooldown", b.cooldown),
			zap.Error(err))
		return
	}

	if b.probing {
		b.probing = false
		b.openedAt = time.Now()

		b.logger.Warn("circuit-breaker-probe-failed",
			zap.Duration("cooldown", b.cooldown),
			zap.Error(err))
	}
}

// GetStatus returns current circuit breaker status for debugging.
func (b *PollCircuitBreaker) GetStatus() Status {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Status{
		Closed:              b.closed.Load(),
		ConsecutiveFailures: b.consecutiveFailures,
		LastFailure:         b.lastFailure,
		OpenedAt:            b.openedAt,
	}
}
