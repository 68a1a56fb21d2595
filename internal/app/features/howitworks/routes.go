// internal/app/features/howitworks/routes.go
package howitworks

import "github.com/go-chi/chi/v5"

// Routes mounts the process page; mount under /how-it-works.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeHowItWorks)
	return r
}
