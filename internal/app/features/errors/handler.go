// internal/app/features/errors/handler.go
package errors

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/blocks"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
)

// pageData is the view model for the not-found page.
type pageData struct {
	viewdata.BaseVM
	Heading string
	Message string
	Links   []blocks.CTA
}

// Handler renders error pages. No lookups; it just renders templates.
type Handler struct {
	Log    *zap.Logger
	Render viewdata.Renderer
	SEO    seo.Builder
}

// NewHandler constructs an errors Handler.
func NewHandler(render viewdata.Renderer, sb seo.Builder, logger *zap.Logger) *Handler {
	return &Handler{Log: logger, Render: render, SEO: sb}
}

// NotFound renders the 404 page. Unresolvable states and cities land here
// too; a miss is not an incident, so nothing is logged.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	p := seo.NotFound
	p.Path = r.URL.Path

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.SEO.Build(p)),
		Heading: "Page Not Found",
		Message: "Sorry, we couldn't find the page you're looking for. It may have moved, or the area you're looking for isn't in our service directory yet.",
		Links: []blocks.CTA{
			{Text: "Back to Home", Href: "/"},
			{Text: "View Service Areas", Href: "/service-areas"},
			{Text: "Get a Quote", Href: "/quote"},
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	h.Render.Render(w, r, "error_not_found", data)
}
