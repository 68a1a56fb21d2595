// internal/app/features/serviceareas/routes.go
package serviceareas

import "github.com/go-chi/chi/v5"

// Routes mounts the coverage directory; mount under /service-areas.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeServiceAreas)
	return r
}
