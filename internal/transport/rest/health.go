package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger is satisfied by *pgxpool.Pool.
type dbPinger interface {
	Ping(ctx context.Context) error
}

type circuitReporter interface {
	CircuitState() string
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	catalog circuitReporter
	version string
}

// NewHealthHandler creates a HealthHandler. version is reported by /health.
// catalog may be nil.
func NewHealthHandler(db dbPinger, catalog circuitReporter, version string) *HealthHandler {
	return &HealthHandler{db: db, catalog: catalog, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDegraded = "degraded"
)

// Live reports that the process is serving. It touches no dependency.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready fails with 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports every component. Only the database can make it fail; a
// catalog circuit that is not closed marks the service degraded because
// search then answers with empty results.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	resp := HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
	}

	if h.catalog != nil {
		catalog := CompStatus{Status: statusOK}
		if state := h.catalog.CircuitState(); state != "closed" {
			catalog.Status = state
			if resp.Status == statusOK {
				resp.Status = statusDegraded
			}
		}
		resp.Components["catalog"] = catalog
	}

	resp.Timestamp = time.Now()
	writeJSON(w, httpStatus(resp.Status), resp)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func httpStatus(overall string) int {
	if overall == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
