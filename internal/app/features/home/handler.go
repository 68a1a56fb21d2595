// internal/app/features/home/handler.go
package home

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/blocks"
	"github.com/dalemusser/balesite/internal/app/system/estimate"
	"github.com/dalemusser/balesite/internal/app/system/formutil"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Catalog *catalog.Catalog
	Render  viewdata.Renderer
	SEO     seo.Builder
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, render viewdata.Renderer, sb seo.Builder, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Render:  render,
		SEO:     sb,
		Metrics: m,
		Log:     logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Hero         blocks.Hero
	Benefits     []blocks.FeatureCard
	Services     []blocks.ServiceCard
	Stats        []models.Stat
	Testimonials []blocks.TestimonialCard
	Checklist    []string
	Contact      formutil.Panel
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, h.SEO.Build(seo.Home))
	h.Metrics.PageView("home")
	h.Render.Render(w, r, "home", compose(h.Catalog, base))
}

func compose(cat *catalog.Catalog, base viewdata.BaseVM) pageData {
	return pageData{
		BaseVM: base,
		Hero: blocks.Hero{
			Subtitle:    "♻️ Sustainable Waste Management",
			Title:       "Turn Your Cardboard Waste Into Revenue",
			Description: "Professional cardboard bale recycling services that help businesses reduce costs, generate income, and meet environmental goals. We handle pickup, processing, and payment - you just focus on your business.",
			Primary:     blocks.CTA{Text: "Get Free Quote", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "How It Works", Href: "/how-it-works"},
		},
		Benefits:     blocks.FeatureCards(cat.HomeBenefits()),
		Services:     blocks.ServiceCards(blocks.Take(cat.ServiceOfferings(), 3)),
		Stats:        stats(cat),
		Testimonials: blocks.TestimonialCards(blocks.Take(cat.Testimonials(), 3)),
		Checklist: []string{
			"Free assessment and quote",
			"Flexible pickup schedules",
			"Competitive market rates",
			"Professional documentation",
		},
		Contact: formutil.ContactPanelFor("/", base.CSRFToken),
	}
}

// stats is the headline strip: states served and the best published rate
// come from the catalog.
func stats(cat *catalog.Catalog) []models.Stat {
	top := cat.NationalAverage().PriceRange.Max
	for _, p := range cat.StatePricing() {
		if p.PriceRange.Max > top {
			top = p.PriceRange.Max
		}
	}
	return []models.Stat{
		{Value: strconv.Itoa(len(cat.ServiceAreas())), Label: "States Served"},
		{Value: estimate.Currency(top), Label: "Max Price/Ton"},
		{Value: "1000+", Label: "Happy Customers"},
		{Value: "24hrs", Label: "Response Time"},
	}
}
