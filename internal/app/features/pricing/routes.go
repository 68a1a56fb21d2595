// internal/app/features/pricing/routes.go
package pricing

import "github.com/go-chi/chi/v5"

// Routes mounts the pricing page and its calculator; mount under /pricing.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePricing)
	r.Get("/estimate", h.ServeEstimate)
	return r
}
