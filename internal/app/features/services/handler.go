// internal/app/features/services/handler.go
package services

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/blocks"
	"github.com/dalemusser/balesite/internal/app/system/formutil"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// Handler serves the services overview.
type Handler struct {
	Catalog *catalog.Catalog
	Render  viewdata.Renderer
	SEO     seo.Builder
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, render viewdata.Renderer, sb seo.Builder, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{Catalog: cat, Render: render, SEO: sb, Metrics: m, Log: logger}
}

type pageData struct {
	viewdata.BaseVM
	Hero       blocks.Hero
	Services   []blocks.ServiceCard
	Process    []models.ProcessStep
	Industries []models.IndustrySolution
	Guarantees []models.Guarantee
	CTA        blocks.Hero
	Contact    formutil.Panel
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /services                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeServices(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, h.SEO.Build(seo.Services))
	h.Metrics.PageView("services")

	data := pageData{
		BaseVM: base,
		Hero: blocks.Hero{
			Subtitle:    "🚛 Full-Service Solutions",
			Title:       "Complete Cardboard Recycling Services",
			Description: "From collection to cash, we provide end-to-end cardboard bale recycling services that maximize your revenue while minimizing your environmental impact.",
			Primary:     blocks.CTA{Text: "Get Service Quote", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "View Pricing", Href: "/pricing"},
		},
		Services:   blocks.ServiceCards(h.Catalog.ServiceOfferings()),
		Process:    h.Catalog.ServiceProcess(),
		Industries: h.Catalog.Industries(),
		Guarantees: h.Catalog.Guarantees(),
		CTA: blocks.Hero{
			Title:       "Start Your Recycling Program Today",
			Description: "Join thousands of businesses already benefiting from our comprehensive cardboard recycling services. Get started with a free assessment and custom quote.",
			Primary:     blocks.CTA{Text: "Get Service Quote", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "Learn How It Works", Href: "/how-it-works"},
		},
		Contact: formutil.ContactPanelFor("/services", base.CSRFToken),
	}

	h.Render.Render(w, r, "services", data)
}
