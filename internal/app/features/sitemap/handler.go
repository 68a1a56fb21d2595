// internal/app/features/sitemap/handler.go
package sitemap

import (
	"encoding/xml"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/seo"
)

// Handler serves the crawler files.
type Handler struct {
	Catalog *catalog.Catalog
	SEO     seo.Builder
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, sb seo.Builder, logger *zap.Logger) *Handler {
	return &Handler{Catalog: cat, SEO: sb, Log: logger}
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// priorities by page kind.
var weights = map[string][2]string{
	seo.KindStatic: {"weekly", "0.8"},
	seo.KindState:  {"monthly", "0.7"},
	seo.KindCity:   {"monthly", "0.6"},
}

func (h *Handler) urls() urlSet {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range seo.Paths(h.Catalog.ServiceAreas()) {
		w := weights[e.Kind]
		u := urlEntry{Loc: h.SEO.URL(e.Path), ChangeFreq: w[0], Priority: w[1]}
		if e.Path == "/" {
			u.Priority = "1.0"
		}
		set.URLs = append(set.URLs, u)
	}
	return set
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /sitemap.xml                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeSitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(h.urls()); err != nil {
		h.Log.Warn("sitemap encode failed", zap.Error(err))
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /robots.txt                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nAllow: /\n\nSitemap: " + h.SEO.URL("/sitemap.xml") + "\n"))
}
