// internal/app/features/serviceareas/handler.go
package serviceareas

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/blocks"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/slug"
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

type Link struct {
	Text string
	Href string
}

type regionCard struct {
	models.Region
	StateLinks []Link
}

type stateEntry struct {
	Link
	Cities []Link
}

// majorCityCard links to its city page when the directory has it; Href
// is empty otherwise.
type majorCityCard struct {
	models.MajorCity
	Href string
}

type pageData struct {
	viewdata.BaseVM
	Hero        blocks.Hero
	Features    []blocks.FeatureCard
	Regions     []regionCard
	States      []stateEntry
	MajorCities []majorCityCard
	Standards   []models.Feature
	CTA         blocks.Hero
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /service-areas                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeServiceAreas(w http.ResponseWriter, r *http.Request) {
	h.Metrics.PageView("service-areas")
	base := viewdata.NewBaseVM(r, h.SEO.Build(seo.ServiceAreas))
	h.Render.Render(w, r, "service_areas", compose(h.Catalog, base))
}

func compose(cat *catalog.Catalog, base viewdata.BaseVM) pageData {
	areas := cat.ServiceAreas()
	data := pageData{
		BaseVM: base,
		Hero: blocks.Hero{
			Title:       "Nationwide Service Coverage",
			Description: "From coast to coast, we provide professional cardboard bale recycling services across all 50 states with regional expertise and local support.",
			Primary:     blocks.CTA{Text: "Get Local Quote", Href: "/quote"},
		},
		Features:  blocks.FeatureCards(cat.AreaFeatures()),
		Standards: standards,
		CTA: blocks.Hero{
			Title:       "Ready to Start Recycling in Your Area?",
			Description: "No matter where you're located, we're ready to serve your cardboard recycling needs.",
			Primary:     blocks.CTA{Text: "Get Local Quote", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "Call " + models.SupportPhone, Href: "tel:" + models.SupportTel},
		},
	}

	for _, rg := range cat.Regions() {
		card := regionCard{Region: rg}
		for _, st := range rg.States {
			card.StateLinks = append(card.StateLinks, Link{Text: st, Href: "/" + slug.Make(st)})
		}
		data.Regions = append(data.Regions, card)
	}

	for _, a := range areas {
		stateSlug := slug.Make(a.State)
		e := stateEntry{Link: Link{Text: a.State, Href: "/" + stateSlug}}
		for _, c := range a.Cities {
			e.Cities = append(e.Cities, Link{Text: c, Href: "/" + stateSlug + "/" + slug.Make(c)})
		}
		data.States = append(data.States, e)
	}

	for _, mc := range cat.MajorCities() {
		data.MajorCities = append(data.MajorCities, majorCityCard{MajorCity: mc, Href: cityHref(areas, mc.Name)})
	}
	return data
}

// cityHref finds the first area listing the city part of a "City, ST"
// name and returns its city page path.
func cityHref(areas []models.ServiceArea, name string) string {
	city, _, _ := strings.Cut(name, ",")
	citySlug := slug.Make(strings.TrimSpace(city))
	for _, a := range areas {
		for _, c := range a.Cities {
			if slug.Matches(c, citySlug) {
				return "/" + slug.Make(a.State) + "/" + citySlug
			}
		}
	}
	return ""
}

var standards = []models.Feature{
	{Title: "Reliable Pickup Schedule", Description: "Consistent, on-time pickups tailored to your business needs"},
	{Title: "Professional Equipment", Description: "State-of-the-art trucks and certified weighing systems"},
	{Title: "Competitive Pricing", Description: "Fair market rates based on current commodity prices"},
	{Title: "Complete Documentation", Description: "Detailed records and certificates for compliance"},
	{Title: "Local Support", Description: "Dedicated regional teams for personalized service"},
	{Title: "Fast Payment", Description: "Prompt payment processing within 7 business days"},
}
