// internal/app/features/quote/routes.go
package quote

import "github.com/go-chi/chi/v5"

// Routes mounts the quote page, its form POST and the live estimate.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeQuote)
	r.Post("/", h.HandleSubmit)
	r.Get("/estimate", h.ServeEstimate)
	return r
}
