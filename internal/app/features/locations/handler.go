// internal/app/features/locations/handler.go
package locations

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/blocks"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/resolver"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/slug"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
	"github.com/dalemusser/balesite/internal/domain/models"
)

type Handler struct {
	Resolver *resolver.Resolver
	NotFound http.HandlerFunc
	Render   viewdata.Renderer
	SEO      seo.Builder
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

func NewHandler(res *resolver.Resolver, notFound http.HandlerFunc, render viewdata.Renderer, sb seo.Builder, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{Resolver: res, NotFound: notFound, Render: render, SEO: sb, Metrics: m, Log: logger}
}

type cityLink struct {
	Name string
	Href string
}

type stateData struct {
	viewdata.BaseVM
	State      string
	Hero       blocks.Hero
	Highlights []string
	Pricing    *blocks.PricingPanel
	Cities     []cityLink
	Features   []blocks.FeatureCard
	Compliance []blocks.ComplianceCard
	CTA        blocks.Hero
}

type cityData struct {
	viewdata.BaseVM
	City        string
	State       string
	StateHref   string
	Hero        blocks.Hero
	Reasons     []string
	Highlights  []models.Stat
	Pricing     *blocks.PricingPanel
	Features    []blocks.FeatureCard
	Steps       []models.ProcessStep
	Testimonial blocks.TestimonialCard
	CTA         blocks.Hero
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /{state}                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeState(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Resolver.ResolveState(slug.Make(chi.URLParam(r, "state")))
	if err != nil {
		h.miss(w, r, err)
		return
	}
	h.Metrics.PageView("state")

	name := rec.Name()
	path := "/" + rec.Slug
	data := stateData{
		BaseVM: viewdata.NewBaseVM(r, h.SEO.Build(seo.State(name, path))),
		State:  name,
		Hero: blocks.Hero{
			Subtitle:    name,
			Title:       "Cardboard Bale Recycling in " + name,
			Description: "Professional cardboard recycling services throughout " + name + ". Turn your cardboard waste into revenue with our reliable pickup and processing.",
			Primary:     blocks.CTA{Text: "Get " + name + " Quote", Href: "/quote"},
		},
		Highlights: stateHighlights,
		Pricing:    blocks.PricingFor(rec.Pricing),
		Features:   stateFeatures(name),
		Compliance: blocks.ComplianceCards(rec.Compliance),
		CTA: blocks.Hero{
			Title:       "Ready to Start Recycling in " + name + "?",
			Description: "Join hundreds of " + name + " businesses already turning their cardboard waste into revenue.",
			Primary:     blocks.CTA{Text: "Get Free " + name + " Quote", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "View All Service Areas", Href: "/service-areas"},
		},
	}
	for _, c := range rec.Area.Cities {
		data.Cities = append(data.Cities, cityLink{Name: c, Href: path + "/" + slug.Make(c)})
	}

	h.Render.Render(w, r, "location_state", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /{state}/{city}                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCity(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Resolver.ResolveCity(slug.Make(chi.URLParam(r, "state")), slug.Make(chi.URLParam(r, "city")))
	if err != nil {
		h.miss(w, r, err)
		return
	}
	h.Metrics.PageView("city")

	city, state := rec.City, rec.State.Name()
	stateHref := "/" + rec.State.Slug
	data := cityData{
		BaseVM:    viewdata.NewBaseVM(r, h.SEO.Build(seo.City(city, state, stateHref+"/"+rec.Slug))),
		City:      city,
		State:     state,
		StateHref: stateHref,
		Hero: blocks.Hero{
			Subtitle:    city + ", " + state,
			Title:       "Cardboard Recycling in " + city,
			Description: "Professional cardboard bale recycling services in " + city + ", " + state + ". Local pickup, competitive rates, and reliable service for your business.",
			Primary:     blocks.CTA{Text: "Get " + city + " Quote", Href: "/quote"},
		},
		Reasons:     cityReasons(city),
		Highlights:  cityHighlights,
		Pricing:     blocks.PricingFor(rec.State.Pricing),
		Features:    cityFeatures(city),
		Steps:       citySteps(city),
		Testimonial: cityTestimonial(city, state),
		CTA: blocks.Hero{
			Title:       "Ready to Start in " + city + "?",
			Description: "Join other " + city + " businesses turning their cardboard waste into revenue.",
			Primary:     blocks.CTA{Text: "Get Free " + city + " Quote", Href: "/quote"},
			Secondary:   &blocks.CTA{Text: "View " + state + " Services", Href: stateHref},
		},
	}

	h.Render.Render(w, r, "location_city", data)
}

func (h *Handler) miss(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, resolver.ErrNotFound) {
		h.Log.Error("location lookup failed", zap.Error(err), zap.String("path", r.URL.Path))
	}
	h.NotFound(w, r)
}
