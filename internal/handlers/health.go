package handlers

import (
	"net/http"
	"runtime"
	"time"

	"mime-registry/internal/startup"
)

const statusHealthy = "healthy"

// HealthResponse contains the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`

	// Registry summary
	Types      int `json:"types"`
	Extensions int `json:"extensions"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service. The registry is
// seeded before the server starts listening, so a running server is a
// healthy one.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	types := h.registry.TypeCount()
	extensions := h.registry.ExtCount()
	h.mu.RUnlock()

	response := HealthResponse{
		Status:       statusHealthy,
		Version:      startup.Version,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		Types:        types,
		Extensions:   extensions,
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{
			"status": "alive",
		})
	}
}

// ReadinessCheck reports whether the service can answer lookups.
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	types := h.registry.TypeCount()
	h.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if types == 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSON(w, map[string]string{"status": "empty registry"})
		return
	}
	writeJSON(w, map[string]string{"status": "ready"})
}
