// internal/app/features/pricing/handler.go
package pricing

import (
	"net/http"

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

// nationalPanel is the national average card.
type nationalPanel struct {
	Average     string
	Range       string
	Trend       blocks.TrendBadge
	Description string
	Updated     string
	Factors     []string
}

type pageData struct {
	viewdata.BaseVM
	Hero       blocks.Hero
	National   nationalPanel
	States     []blocks.PricingPanel
	Tiers      []blocks.TierCard
	Calculator calculatorForm
	Estimate   calcView
	FAQ        blocks.FAQSection
	CTA        blocks.Hero
	Contact    formutil.Panel
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /pricing                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServePricing(w http.ResponseWriter, r *http.Request) {
	h.Metrics.PageView("pricing")
	base := viewdata.NewBaseVM(r, h.SEO.Build(seo.Pricing))

	in := parseCalc(r.URL.Query())
	if in.Bucket == "" {
		in.Bucket = defaultVolume
	}

	nat := h.Catalog.NationalAverage()
	data := pageData{
		BaseVM: base,
		Hero: blocks.Hero{
			Subtitle:    "💰 Current Market Rates",
			Title:       "Cardboard Pricing by State",
			Description: "Real-time cardboard bale pricing across major US markets. Current rates range from " + rangeText(nat.PriceRange) + " per ton based on location, quality, and volume.",
			Primary:     blocks.CTA{Text: "Get Local Quote", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "View All States", Href: "#state-pricing"},
		},
		National: nationalPanel{
			Average:     estimate.Price(nat.AveragePrice),
			Range:       estimate.Price(nat.PriceRange.Min) + " - " + estimate.Price(nat.PriceRange.Max),
			Trend:       blocks.TrendFor(nat.Trend),
			Description: nat.Description,
			Updated:     nat.LastUpdated.Display(),
			Factors:     nat.Factors,
		},
		States:     blocks.PricingPanels(h.Catalog.StatePricing()),
		Tiers:      blocks.Tiers(h.Catalog.VolumeTiers()),
		Calculator: form(h.Catalog, in),
		Estimate:   calculate(h.Catalog, in),
		FAQ:        blocks.FAQ(h.Catalog.FAQs(), models.FAQPricing),
		CTA: blocks.Hero{
			Title:       "Get Local Pricing",
			Description: "Prices vary by location, volume, and quality. Contact us for a customized quote based on your specific situation.",
			Primary:     blocks.CTA{Text: "Request Quote", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "Call (800) CARDBOARD", Href: "tel:+18002273267"},
		},
		Contact: formutil.ContactPanelFor("/pricing", base.CSRFToken),
	}

	h.Render.Render(w, r, "pricing", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /pricing/estimate – calculator panel (htmx)                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeEstimate(w http.ResponseWriter, r *http.Request) {
	in := parseCalc(r.URL.Query())
	h.Render.Snippet(w, "pricing_estimate", calculate(h.Catalog, in))
}

// rangeText prints "$70-120" the way the hero copy reads.
func rangeText(p models.PriceRange) string {
	return estimate.Currency(p.Min) + "-" + estimate.Currency(p.Max)[1:]
}
