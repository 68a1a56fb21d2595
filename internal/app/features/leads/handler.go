// internal/app/features/leads/handler.go
package leads

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/flash"
	"github.com/dalemusser/balesite/internal/app/system/formutil"
	"github.com/dalemusser/balesite/internal/app/system/leadform"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/ratelimit"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
)

// Handler owns lead form plumbing shared by the contact and quote
// features: per-field validation and the POST flow in submit.go.
type Handler struct {
	Leads   *leadform.Controller
	Limiter *ratelimit.Limiter // nil disables rate limiting
	Flash   *flash.Store
	Metrics *metrics.Metrics
	Render  viewdata.Renderer
	Log     *zap.Logger
}

func NewHandler(ctrl *leadform.Controller, lim *ratelimit.Limiter, fl *flash.Store, m *metrics.Metrics, render viewdata.Renderer, logger *zap.Logger) *Handler {
	return &Handler{Leads: ctrl, Limiter: lim, Flash: fl, Metrics: m, Render: render, Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /leads/{form}/validate/{field} – inline error for one field (htmx)     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeValidateField(w http.ResponseWriter, r *http.Request) {
	kind, err := leadform.ParseKind(chi.URLParam(r, "form"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	field := chi.URLParam(r, "field")
	msg, ok := leadform.ValidateField(kind, r.PostForm, field, h.Leads.States)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.Render.Snippet(w, "field_error_snippet", formutil.FieldError{Field: field, Message: msg})
}
