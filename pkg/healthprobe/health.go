// Package healthprobe provides liveness and readiness handlers for the
// watch service. Readiness is tracked per component so the service only
// reports ready once the client and the watcher are both up.
package healthprobe

import (
	"net/http"
	"sort"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// HealthChecker tracks per-component readiness.
type HealthChecker struct {
	startTime time.Time

	mu    sync.RWMutex
	ready map[string]bool
}

// New creates a HealthChecker waiting on the named components. With no
// components the checker reports ready immediately.
func New(components ...string) *HealthChecker {
	ready := make(map[string]bool, len(components))
	for _, c := range components {
		ready[c] = false
	}

	return &HealthChecker{
		startTime: time.Now(),
		ready:     ready,
	}
}

// MarkReady marks one component as ready. Unregistered components are
// added, already marked as ready.
func (h *HealthChecker) MarkReady(component string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ready[component] = true
}

// MarkNotReady marks one component as not ready, flipping the service
// back to 503 until it recovers.
func (h *HealthChecker) MarkNotReady(component string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ready[component] = false
}

// waitingOn returns the sorted names of components not yet ready.
func (h *HealthChecker) waitingOn() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var pending []string
	for component, ok := range h.ready {
		if !ok {
			pending = append(pending, component)
		}
	}
	sort.Strings(pending)
	return pending
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string   `json:"status"`
	Uptime    string   `json:"uptime"`
	WaitingOn []string `json:"waiting_on,omitempty"`
}

// Health returns an HTTP handler for liveness checks.
// Always returns 200 OK if the application is running.
func (h *HealthChecker) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := time.Since(h.startTime)
		resp := HealthResponse{
			Status: "healthy",
			Uptime: uptime.String(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// Ready returns an HTTP handler for readiness checks.
// Returns 200 OK once every component is ready, 503 Service Unavailable
// with the pending component names until then.
func (h *HealthChecker) Ready() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending := h.waitingOn()
		if len(pending) > 0 {
			resp := HealthResponse{
				Status:    "not_ready",
				WaitingOn: pending,
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(resp)
			return
		}

		uptime := time.Since(h.startTime)
		resp := HealthResponse{
			Status: "ready",
			Uptime: uptime.String(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
