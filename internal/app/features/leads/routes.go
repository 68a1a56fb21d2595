// internal/app/features/leads/routes.go
package leads

import "github.com/go-chi/chi/v5"

// Routes mounts the blur validation endpoint; mount under /leads.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/{form}/validate/{field}", h.ServeValidateField)
	return r
}
