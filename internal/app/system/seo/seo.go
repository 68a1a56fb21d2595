// internal/app/system/seo/seo.go
//
// Package seo builds the per-page <head> metadata: title, description,
// keywords, canonical URL, Open Graph and Twitter card fields.
package seo

import (
	"strings"

	"github.com/dalemusser/balesite/internal/domain/models"
)

// DefaultTitle is used when a page has no subject of its own.
const DefaultTitle = models.SiteName + " | " + models.SiteTagline

// DefaultDescription is the site-wide description.
const DefaultDescription = "Professional cardboard bale recycling services. Turn your cardboard waste into revenue with our pickup, processing, and revenue-sharing program. Serving businesses nationwide."

// Page is what a page composition knows about itself.
type Page struct {
	Subject     string // title before the " | Site" suffix; empty means DefaultTitle
	Description string
	Keywords    []string
	Path        string // absolute path, e.g. "/california"
	NoIndex     bool
}

// Meta is the rendered metadata a layout prints.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Robots      string
	OGType      string
	OGLocale    string
	SiteName    string
	TwitterCard string
}

// KeywordList joins keywords for the meta keywords tag.
func (m Meta) KeywordList() string {
	return strings.Join(m.Keywords, ", ")
}

// Builder turns a Page into Meta against the public base URL.
type Builder struct {
	baseURL string
}

// NewBuilder returns a Builder. A trailing slash on baseURL is ignored.
func NewBuilder(baseURL string) Builder {
	return Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// BaseURL returns the normalized base URL.
func (b Builder) BaseURL() string { return b.baseURL }

// URL makes an absolute URL for path.
func (b Builder) URL(path string) string {
	if path == "" || path == "/" {
		return b.baseURL + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.baseURL + path
}

// Build fills in the site defaults around p.
func (b Builder) Build(p Page) Meta {
	m := Meta{
		Title:       Title(p.Subject),
		Description: p.Description,
		Keywords:    p.Keywords,
		Canonical:   b.URL(p.Path),
		Robots:      "index, follow",
		OGType:      "website",
		OGLocale:    "en_US",
		SiteName:    models.SiteName,
		TwitterCard: "summary_large_image",
	}
	if m.Description == "" {
		m.Description = DefaultDescription
	}
	if len(m.Keywords) == 0 {
		m.Keywords = DefaultKeywords
	}
	if p.NoIndex {
		m.Robots = "noindex, follow"
	}
	return m
}

// Title applies the "{Subject} | Cardboard Bale Recycling" format.
func Title(subject string) string {
	if subject == "" {
		return DefaultTitle
	}
	return subject + " | " + models.SiteName
}
