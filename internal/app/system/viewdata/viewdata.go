// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/dalemusser/balesite/internal/app/system/flash"
	"github.com/dalemusser/balesite/internal/app/system/leadform"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// NavItem is one header link.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// MainNav is the header navigation in display order.
var MainNav = []NavItem{
	{Label: "Home", Href: "/"},
	{Label: "Services", Href: "/services"},
	{Label: "How It Works", Href: "/how-it-works"},
	{Label: "Service Areas", Href: "/service-areas"},
	{Label: "Pricing", Href: "/pricing"},
	{Label: "Resources", Href: "/resources"},
}

// Banner is a flash message still inside its display window.
type Banner struct {
	Success   bool
	Title     string
	Message   string
	HideAfter int64 // milliseconds left in the display window
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type pricingData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := pricingData{
//	    BaseVM: viewdata.NewBaseVM(r, h.SEO.Build(seo.Pricing)),
//	}
type BaseVM struct {
	SiteName string
	Tagline  string
	Meta     seo.Meta
	Nav      []NavItem

	// Page context
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// Footer and CTA contact details
	SupportEmail string
	SupportPhone string
	SupportTel   string
	Year         int

	Flash *Banner
}

// Now is the clock used for banner windows and the footer year.
var Now = time.Now

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, meta seo.Meta) BaseVM {
	now := Now()
	return BaseVM{
		SiteName:     models.SiteName,
		Tagline:      models.SiteTagline,
		Meta:         meta,
		Nav:          navFor(r.URL.Path),
		BackURL:      httpnav.ResolveBackURL(r, "/"),
		CurrentPath:  httpnav.CurrentPath(r),
		CSRFToken:    csrf.Token(r),
		SupportEmail: models.SupportEmail,
		SupportPhone: models.SupportPhone,
		SupportTel:   models.SupportTel,
		Year:         now.Year(),
		Flash:        bannerFor(r, now),
	}
}

// navFor marks the entry matching path. Nested paths mark their section.
func navFor(path string) []NavItem {
	out := make([]NavItem, len(MainNav))
	copy(out, MainNav)
	for i := range out {
		href := out[i].Href
		if href == "/" {
			out[i].Active = path == "/"
			continue
		}
		out[i].Active = path == href || strings.HasPrefix(path, href+"/")
	}
	return out
}

// bannerFor turns the request's flash into a Banner, or nil when there is
// none or its display window has passed.
func bannerFor(r *http.Request, now time.Time) *Banner {
	b, ok := flash.FromContext(r.Context())
	if !ok {
		return nil
	}
	st := leadform.Status{State: leadform.Error, Message: b.Message, SettledAt: b.SetAt}
	if b.IsSuccess() {
		st.State = leadform.Success
	}
	if !st.At(now).State.Settled() {
		return nil
	}
	left := b.SetAt.Add(leadform.DisplayWindow).Sub(now)
	return &Banner{
		Success:   b.IsSuccess(),
		Title:     b.Title,
		Message:   b.Message,
		HideAfter: left.Milliseconds(),
	}
}

// BannerFromStatus builds a Banner for a form re-rendered in the same
// request (validation or relay failure).
func BannerFromStatus(k leadform.Kind, st leadform.Status, now time.Time) *Banner {
	st = st.At(now)
	switch st.State {
	case leadform.Success:
		return &Banner{Success: true, Title: k.SuccessTitle(), Message: st.Message, HideAfter: leadform.DisplayWindow.Milliseconds()}
	case leadform.Error:
		return &Banner{Title: k.ErrorTitle(), Message: st.Message, HideAfter: leadform.DisplayWindow.Milliseconds()}
	}
	return nil
}
