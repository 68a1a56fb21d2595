// internal/app/features/resources/handler.go
package resources

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/blocks"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
	"github.com/dalemusser/balesite/internal/domain/models"
)

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

type categoryCard struct {
	models.ResourceCategory
	Glyph blocks.Icon
}

type toolCard struct {
	models.Tool
	Glyph blocks.Icon
}

type pageData struct {
	viewdata.BaseVM
	Hero       blocks.Hero
	QuickStats []models.StatGroup
	Tools      []toolCard
	Categories []categoryCard
	Articles   []models.Article
	Support    blocks.Hero
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /resources                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeResources(w http.ResponseWriter, r *http.Request) {
	h.Metrics.PageView("resources")
	base := viewdata.NewBaseVM(r, h.SEO.Build(seo.Resources))

	data := pageData{
		BaseVM: base,
		Hero: blocks.Hero{
			Title:       "Recycling Resources & Tools",
			Description: "Access comprehensive guides, calculators, and tools to maximize the value and impact of your cardboard recycling program.",
			Primary:     blocks.CTA{Text: "Explore Tools", Href: "#tools"},
			Secondary:   &blocks.CTA{Text: "Browse Guides", Href: "#guides"},
		},
		QuickStats: h.Catalog.QuickStats(),
		Articles:   h.Catalog.Articles(),
		Support: blocks.Hero{
			Title:       "Need Additional Support?",
			Description: "Our team of recycling experts is here to help you optimize your program and answer any questions you may have.",
			Primary:     blocks.CTA{Text: "Get Consultation", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "Contact Support", Href: "mailto:" + base.SupportEmail},
		},
	}
	for _, t := range h.Catalog.FeaturedTools() {
		data.Tools = append(data.Tools, toolCard{Tool: t, Glyph: blocks.GlyphFor(t.Icon)})
	}
	for _, c := range h.Catalog.ResourceCategories() {
		data.Categories = append(data.Categories, categoryCard{ResourceCategory: c, Glyph: blocks.GlyphFor(c.Icon)})
	}

	h.Render.Render(w, r, "resources", data)
}
