// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/features/leads"
	"github.com/dalemusser/balesite/internal/app/system/formutil"
	"github.com/dalemusser/balesite/internal/app/system/leadform"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/normalize"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
)

type pageData struct {
	viewdata.BaseVM
	Contact formutil.Panel
}

type Handler struct {
	Leads   *leads.Handler
	Render  viewdata.Renderer
	SEO     seo.Builder
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewHandler(lh *leads.Handler, render viewdata.Renderer, sb seo.Builder, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		Leads:   lh,
		Render:  render,
		SEO:     sb,
		Metrics: m,
		Log:     logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /contact                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	h.Metrics.PageView("contact")
	h.page(w, r, http.StatusOK, formutil.New(leadform.KindContact, seo.Contact.Path))
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /contact                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleSubmit accepts the contact form from any page. The hidden origin
// field names that page; success redirects back to its contact panel.
// Without htmx, a form that needs correcting is shown on the standalone
// contact page.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	origin := normalize.Origin(r.PostFormValue("origin"), seo.Contact.Path)

	h.Leads.Handle(w, r, leads.Submission{
		Kind:     leadform.KindContact,
		Origin:   origin,
		Redirect: origin + "#contact",
		Run: func(ctx context.Context, v url.Values) leadform.Outcome {
			return h.Leads.Leads.SubmitContact(ctx, leadform.DecodeContact(v))
		},
		View: h.view,
	})
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request, status int, f formutil.Form) {
	if leads.IsHTMX(r) {
		p := formutil.ContactPanelFor(f.Origin, csrf.Token(r))
		p.Form = f
		h.Render.Snippet(w, "contact_form_snippet", p)
		return
	}
	h.page(w, r, status, f)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request, status int, f formutil.Form) {
	base := viewdata.NewBaseVM(r, h.SEO.Build(seo.Contact))
	p := formutil.ContactPanelFor(seo.Contact.Path, base.CSRFToken)
	p.Form = f

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	h.Render.Render(w, r, "contact", pageData{BaseVM: base, Contact: p})
}
