// internal/app/features/sitemap/routes.go
package sitemap

import "github.com/go-chi/chi/v5"

// Mount registers /sitemap.xml and /robots.txt on the root router.
func Mount(r chi.Router, h *Handler) {
	r.Get("/sitemap.xml", h.ServeSitemap)
	r.Get("/robots.txt", h.ServeRobots)
}
