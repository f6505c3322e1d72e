package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/memoboard/internal/domain"
)

const probeTimeout = 3 * time.Second

// storeInspector reads the data file without changing it.
type storeInspector interface {
	Inspect(ctx context.Context) (domain.StorageStats, error)
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	store   storeInspector
	version string
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. Uptime is measured from this call.
func NewHealthHandler(store storeInspector, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version, started: time.Now(), now: time.Now}
}

type liveResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

type readyResponse struct {
	Status string `json:"status"`
	Memos  int    `json:"memos"`
}

type healthResponse struct {
	Status  string         `json:"status"`
	Version string         `json:"version"`
	Uptime  string         `json:"uptime"`
	Storage storageSummary `json:"storage"`
}

type storageSummary struct {
	Status         string     `json:"status"`
	Path           string     `json:"path"`
	Exists         bool       `json:"exists"`
	Memos          int        `json:"memos"`
	SizeBytes      int64      `json:"size_bytes"`
	ModifiedAt     *time.Time `json:"modified_at,omitempty"`
	Quarantines    int        `json:"quarantines"`
	LastQuarantine string     `json:"last_quarantine,omitempty"`
	Latency        string     `json:"latency"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, liveResponse{Status: "ok", Uptime: h.uptime()})
}

// Ready answers 503 while the data file cannot be read.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	stats, err := h.store.Inspect(ctx)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, readyResponse{Status: "down"})
		return
	}
	writeJSON(w, http.StatusOK, readyResponse{Status: "ok", Memos: stats.Memos})
}

// Health reports the data file in detail. A readable file after a
// quarantine is "degraded": the board works but earlier memos were moved aside.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	start := h.now()
	stats, err := h.store.Inspect(ctx)
	latency := h.now().Sub(start)

	summary := storageSummary{
		Status:         "ok",
		Path:           stats.Path,
		Exists:         stats.Exists,
		Memos:          stats.Memos,
		SizeBytes:      stats.SizeBytes,
		Quarantines:    stats.Quarantines,
		LastQuarantine: stats.LastQuarantine,
		Latency:        latency.String(),
	}
	if !stats.ModifiedAt.IsZero() {
		modified := stats.ModifiedAt
		summary.ModifiedAt = &modified
	}

	status, code := "ok", http.StatusOK
	switch {
	case err != nil:
		summary.Status = "down"
		status, code = "down", http.StatusServiceUnavailable
	case stats.Quarantines > 0:
		summary.Status = "quarantined"
		status = "degraded"
	}

	writeJSON(w, code, healthResponse{
		Status:  status,
		Version: h.version,
		Uptime:  h.uptime(),
		Storage: summary,
	})
}

func (h *HealthHandler) uptime() string {
	return h.now().Sub(h.started).Truncate(time.Second).String()
}
