// internal/app/features/quote/handler.go
package quote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/features/leads"
	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/blocks"
	"github.com/dalemusser/balesite/internal/app/system/formutil"
	"github.com/dalemusser/balesite/internal/app/system/leadform"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/normalize"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
	"github.com/dalemusser/balesite/internal/domain/models"
)

type Handler struct {
	Catalog *catalog.Catalog
	Leads   *leads.Handler
	Render  viewdata.Renderer
	SEO     seo.Builder
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, lh *leads.Handler, render viewdata.Renderer, sb seo.Builder, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{Catalog: cat, Leads: lh, Render: render, SEO: sb, Metrics: m, Log: logger}
}

type pageData struct {
	viewdata.BaseVM
	Hero      blocks.Hero
	Quote     formView
	NextSteps []nextStep
	FAQ       blocks.FAQSection
}

// redirect is where a delivered quote lands: the form, empty, under the
// success banner.
const redirect = "/quote#quote-form"

/*─────────────────────────────────────────────────────────────────────────────*
| GET /quote                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeQuote(w http.ResponseWriter, r *http.Request) {
	h.Metrics.PageView("quote")
	h.page(w, r, http.StatusOK, formutil.New(leadform.KindQuote, seo.Quote.Path))
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /quote                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	h.Leads.Handle(w, r, leads.Submission{
		Kind:     leadform.KindQuote,
		Origin:   seo.Quote.Path,
		Redirect: redirect,
		Run: func(ctx context.Context, v url.Values) leadform.Outcome {
			return h.Leads.Leads.SubmitQuote(ctx, leadform.DecodeQuote(v))
		},
		View: h.view,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /quote/estimate – sidebar estimate (htmx)                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeEstimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	equipment := ""
	if e := q.Get("equipmentNeeds"); e != "" {
		equipment = normalize.Checkbox(e)
	}
	h.Render.Snippet(w, "quote_estimate", estimateFor(normalize.Choice(q.Get("monthlyVolume")), equipment))
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request, status int, f formutil.Form) {
	if leads.IsHTMX(r) {
		h.Render.Snippet(w, "quote_form", newFormView(h.Catalog, f, csrf.Token(r)))
		return
	}
	h.page(w, r, status, f)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request, status int, f formutil.Form) {
	base := viewdata.NewBaseVM(r, h.SEO.Build(seo.Quote))
	data := pageData{
		BaseVM: base,
		Hero: blocks.Hero{
			Subtitle:    "📊 Free Assessment",
			Title:       "Get Your Custom Quote",
			Description: "Discover how much revenue you can generate from your cardboard waste. Fill out our comprehensive form for a detailed assessment and pricing proposal.",
			Primary:     blocks.CTA{Text: "Start Quote Form", Href: "#quote-form"},
		},
		Quote:     newFormView(h.Catalog, f, base.CSRFToken),
		NextSteps: nextSteps,
		FAQ:       blocks.FAQ(h.Catalog.FAQs(), models.FAQGeneral, models.FAQProcess),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	h.Render.Render(w, r, "quote", data)
}
