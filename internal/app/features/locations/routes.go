// internal/app/features/locations/routes.go
package locations

import "github.com/go-chi/chi/v5"

// Mount registers the location pages on the root router. They sit at the
// top level next to the static pages, so they cannot live in a subrouter;
// chi matches the static routes first.
func Mount(r chi.Router, h *Handler) {
	r.Get("/{state}", h.ServeState)
	r.Get("/{state}/{city}", h.ServeCity)
}
