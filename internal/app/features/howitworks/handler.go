// internal/app/features/howitworks/handler.go
package howitworks

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

// stepCard is a process step laid out in a zig-zag: odd rows reverse.
type stepCard struct {
	models.ProcessStep
	Glyph   blocks.Icon
	Reverse bool
}

type pageData struct {
	viewdata.BaseVM
	Hero     blocks.Hero
	Steps    []stepCard
	Benefits []blocks.FeatureCard
	CTA      blocks.Hero
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /how-it-works                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeHowItWorks(w http.ResponseWriter, r *http.Request) {
	h.Metrics.PageView("how-it-works")

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.SEO.Build(seo.HowItWorks)),
		Hero: blocks.Hero{
			Title:       "How Our Process Works",
			Description: "From initial contact to payment, discover how we make cardboard recycling simple, profitable, and environmentally responsible for your business.",
			Primary:     blocks.CTA{Text: "Get Started Today", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "View Our Services", Href: "/services"},
		},
		Steps:    steps(h.Catalog.ProcessSteps()),
		Benefits: blocks.FeatureCards(h.Catalog.ProcessBenefits()),
		CTA: blocks.Hero{
			Title:       "Ready to Get Started?",
			Description: "Join thousands of businesses that have transformed their cardboard waste into revenue.",
			Primary:     blocks.CTA{Text: "Get Free Quote", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "View Pricing", Href: "/pricing"},
		},
	}

	h.Render.Render(w, r, "how_it_works", data)
}

func steps(ps []models.ProcessStep) []stepCard {
	out := make([]stepCard, len(ps))
	for i, p := range ps {
		out[i] = stepCard{ProcessStep: p, Glyph: blocks.GlyphFor(p.Icon), Reverse: i%2 == 1}
	}
	return out
}
