// Package formutil carries a lead form's entered values and inline errors
// between the handler and its template.
//
// When a submission fails validation or delivery, the form is re-rendered
// with:
// - The user's previously entered values (echoed back)
// - One inline message under each invalid field
// - A banner explaining what went wrong
//
// Example usage:
//
//	out := h.Leads.SubmitQuote(ctx, in)
//	data.Form = formutil.FromValues(leadform.KindQuote, "/quote", r.PostForm, out.Errors)
//	data.Form.SetBanner(viewdata.BannerFromStatus(out.Kind, out.Status, now))
package formutil

import (
	"net/url"

	"github.com/dalemusser/balesite/internal/app/system/inputval"
	"github.com/dalemusser/balesite/internal/app/system/leadform"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
)

// Form is the template view of one lead form.
type Form struct {
	Kind   leadform.Kind
	Action string // POST target
	Origin string // page the form sits on; PRG target
	Values map[string]string
	Errors map[string]string
	Banner *viewdata.Banner
}

// New returns an empty form of kind k that posts to its own endpoint.
func New(k leadform.Kind, origin string) Form {
	return Form{
		Kind:   k,
		Action: "/" + string(k),
		Origin: origin,
		Values: map[string]string{},
		Errors: map[string]string{},
	}
}

// FromValues echoes posted values back with the field errors from res.
// The honeypot is never echoed.
func FromValues(k leadform.Kind, origin string, v url.Values, res *inputval.Result) Form {
	f := New(k, origin)
	for name := range v {
		if name == "botcheck" || name == "gorilla.csrf.Token" || name == "origin" {
			continue
		}
		f.Values[name] = v.Get(name)
	}
	if res != nil {
		for name, msg := range res.ByField() {
			f.Errors[name] = msg
		}
	}
	return f
}

// Value is the echoed value of a field.
func (f Form) Value(name string) string { return f.Values[name] }

// Error is the inline message for a field, or "".
func (f Form) Error(name string) string { return f.Errors[name] }

// HasError reports whether a field has an inline message.
func (f Form) HasError(name string) bool { return f.Errors[name] != "" }

// Selected reports whether a select or radio field holds value.
func (f Form) Selected(name, value string) bool { return f.Values[name] == value }

// SetBanner attaches the banner shown above the form.
func (f *Form) SetBanner(b *viewdata.Banner) { f.Banner = b }

// FieldError is the data for the inline "field_error" template.
type FieldError struct {
	Field   string
	Message string
}

// FieldError returns the inline error block for a field.
func (f Form) FieldError(name string) FieldError {
	return FieldError{Field: name, Message: f.Errors[name]}
}

// Panel is a form with its heading, as embedded in a page.
type Panel struct {
	Title       string
	Description string
	Form        Form
	CSRFToken   string
}

// ContactPanel is an empty contact form embedded on the page at origin.
func ContactPanel(title, description, origin, csrfToken string) Panel {
	return Panel{
		Title:       title,
		Description: description,
		Form:        New(leadform.KindContact, origin),
		CSRFToken:   csrfToken,
	}
}

// contactCopy is the heading each page gives its embedded contact form.
var contactCopy = map[string][2]string{
	"/": {
		"Get Your Free Quote",
		"Tell us about your cardboard waste and we'll provide a customized recycling solution.",
	},
	"/services": {
		"Request Service Information",
		"Tell us about your business and we'll recommend the best recycling solution for your needs.",
	},
	"/pricing": {
		"Get State-Specific Pricing",
		"Tell us your location and volume for accurate local pricing.",
	},
}

// DefaultContactTitle heads a contact form on a page with no copy of its own.
const (
	DefaultContactTitle       = "Contact Us"
	DefaultContactDescription = "Have a question about cardboard recycling? Send us a message and we'll get back to you within 24 hours."
)

// ContactPanelFor is the contact panel for the page at origin, headed the
// way that page heads it. htmx re-renders use it so the swapped panel keeps
// its heading.
func ContactPanelFor(origin, csrfToken string) Panel {
	c, ok := contactCopy[origin]
	if !ok {
		return ContactPanel(DefaultContactTitle, DefaultContactDescription, origin, csrfToken)
	}
	return ContactPanel(c[0], c[1], origin, csrfToken)
}
