// internal/app/features/health/handler.go
package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
)

// RelayStatus reports whether the submission relay has credentials.
// *relay.Client implements it.
type RelayStatus interface {
	Configured() bool
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Catalog *catalog.Catalog
	Relay   RelayStatus
	Log     *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(cat *catalog.Catalog, relay RelayStatus, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Relay:   relay,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string          `json:"status"`
	Catalog *catalog.Counts `json:"catalog,omitempty"`
	Relay   string          `json:"relay"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "catalog":{"states":50,"cities":212,"pricing":10}, "relay":"configured" }
//
// When the loaded reference data breaks an invariant: 503 and
//
//	{ "status":"error", "relay":"…", "message":"Catalog invalid", "error":"…" }
//
// An unconfigured relay is reported but still healthy: the pages serve and
// forms answer with the fallback error.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{Status: "ok", Relay: "unconfigured"}
	if h.Relay != nil && h.Relay.Configured() {
		resp.Relay = "configured"
	}

	if err := h.Catalog.Check(); err != nil {
		h.Log.Error("health-check: catalog invalid", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Message = "Catalog invalid"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	counts := h.Catalog.Counts()
	resp.Catalog = &counts
	_ = json.NewEncoder(w).Encode(resp)
}
