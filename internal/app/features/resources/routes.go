// internal/app/features/resources/routes.go
package resources

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeResources)
	return r
}
