package bootstrap

import (
	"context"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/testutil"
)

// browser drives the fully built handler the way a visitor would: it
// keeps cookies between requests and echoes the CSRF token the last page
// carried.
type browser struct {
	t       *testing.T
	h       http.Handler
	cookies map[string]*http.Cookie
	token   string
}

var csrfMeta = regexp.MustCompile(`<meta name="csrf-token" content="([^"]+)">`)

// bootSite runs the same hooks as the server (Startup, then BuildHandler)
// against the real templates.
func bootSite(t *testing.T, appCfg AppConfig) (*browser, DBDeps) {
	t.Helper()
	deps := testDeps(t)
	// Flash banners expire against the wall clock.
	deps.Leads.Now = time.Now
	coreCfg := &config.CoreConfig{Env: "test"}
	logger := zap.NewNop()

	if err := Startup(context.Background(), coreCfg, appCfg, deps, logger); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	h, err := BuildHandler(coreCfg, appCfg, deps, logger)
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	return &browser{t: t, h: h, cookies: map[string]*http.Cookie{}}, deps
}

func (b *browser) do(req *http.Request) *testutil.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	if b.token != "" && req.Method != http.MethodGet {
		req.Header.Set("X-CSRF-Token", b.token)
	}
	rec := testutil.NewRecorder()
	b.h.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	if m := csrfMeta.FindStringSubmatch(rec.Body.String()); m != nil {
		b.token = html.UnescapeString(m[1])
	}
	if strings.Contains(rec.Body.String(), "template exec error") {
		b.t.Errorf("%s %s: template exec error", req.Method, req.URL.Path)
	}
	return rec
}

func (b *browser) get(path string) *testutil.ResponseRecorder {
	b.t.Helper()
	return b.do(testutil.NewRequest(http.MethodGet, path))
}

func (b *browser) post(path string, v url.Values, htmx bool) *testutil.ResponseRecorder {
	b.t.Helper()
	req := testutil.NewFormRequest(path, v)
	if htmx {
		req = testutil.HTMX(req)
	}
	return b.do(req)
}

func TestSite_EveryPageRenders(t *testing.T) {
	site, deps := bootSite(t, validConfig())

	for _, e := range seo.Paths(deps.Catalog.ServiceAreas()) {
		t.Run(e.Path, func(t *testing.T) {
			site.t = t
			rec := site.get(e.Path)
			rec.AssertStatus(t, http.StatusOK)
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q", ct)
			}
			rec.AssertContains(t, "</html>")
		})
	}

	t.Run("city page content", func(t *testing.T) {
		site.t = t
		rec := site.get("/california/los-angeles")
		rec.AssertContains(t, "Los Angeles")
		rec.AssertContains(t, "85")
	})

	t.Run("unknown state", func(t *testing.T) {
		site.t = t
		rec := site.get("/nowhere-state")
		rec.AssertStatus(t, http.StatusNotFound)
		rec.AssertContains(t, `<div class="error-code">404</div>`)
	})
}

func TestSite_Snippets(t *testing.T) {
	site, _ := bootSite(t, validConfig())

	// Picks up the CSRF cookie and token for the posts below.
	site.get("/contact").AssertStatus(t, http.StatusOK)
	if site.token == "" {
		t.Fatal("contact page carried no CSRF token")
	}

	invalidContact := testutil.ContactValues()
	invalidContact.Del("name")
	honeypot := testutil.ContactValues()
	honeypot.Set("botcheck", "spam")

	tests := []struct {
		name     string
		method   string
		path     string
		form     url.Values
		contains []string
	}{
		{"contact success", http.MethodPost, "/contact", testutil.ContactValues(),
			[]string{`id="contact"`, "banner-success", "contact you within 24 hours"}},
		{"contact honeypot", http.MethodPost, "/contact", honeypot,
			[]string{`id="contact"`, "banner-success", "contact you within 24 hours"}},
		{"contact invalid", http.MethodPost, "/contact", invalidContact,
			[]string{`id="contact"`, "Name is required"}},
		{"quote success", http.MethodPost, "/quote", testutil.QuoteValues(),
			[]string{`id="quote-form-panel"`, "banner-success"}},
		{"quote estimate", http.MethodGet, "/quote/estimate?monthlyVolume=50-100", nil,
			[]string{`id="quote-estimate"`, "$5,000 - $6,000"}},
		{"pricing estimate", http.MethodGet, "/pricing/estimate?state=CA&monthlyVolume=10-25", nil,
			[]string{`id="estimate"`, "Total Monthly Benefit"}},
		{"contact field check", http.MethodPost, "/leads/contact/validate/email", url.Values{"email": {"not-an-email"}},
			[]string{`id="err-email"`, "Please enter a valid email address"}},
		{"quote field check", http.MethodPost, "/leads/quote/validate/zipCode", url.Values{"zipCode": {"1234"}},
			[]string{`id="err-zipCode"`, "Please enter a valid ZIP code"}},
		{"field check passes", http.MethodPost, "/leads/contact/validate/name", url.Values{"name": {"Ana"}},
			[]string{`id="err-name"`, "hidden"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site.t = t
			var rec *testutil.ResponseRecorder
			if tt.method == http.MethodGet {
				rec = site.do(testutil.HTMX(testutil.NewRequest(http.MethodGet, tt.path)))
			} else {
				rec = site.post(tt.path, tt.form, true)
			}
			rec.AssertStatus(t, http.StatusOK)
			if strings.Contains(rec.Body.String(), "<html") {
				t.Error("snippet response carried the full layout")
			}
			for _, want := range tt.contains {
				rec.AssertContains(t, want)
			}
		})
	}
}

func TestSite_ContactPostRedirectGet(t *testing.T) {
	site, _ := bootSite(t, validConfig())
	site.get("/services")

	rec := site.post("/contact", testutil.ContactValues(), false)
	rec.AssertRedirect(t, "/services#contact")

	page := site.get("/services")
	page.AssertStatus(t, http.StatusOK)
	page.AssertContains(t, "flash-toast")

	// One-shot: the banner is gone on the next view.
	again := site.get("/services")
	if strings.Contains(again.Body.String(), "flash-toast") {
		t.Error("flash shown twice")
	}
}

func TestSite_PostWithoutTokenRejected(t *testing.T) {
	site, _ := bootSite(t, validConfig())
	site.get("/contact")
	site.token = ""

	rec := site.post("/contact", testutil.ContactValues(), false)
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestSite_ForwardedForIgnoredUnlessTrusted(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		lastStatus int
	}{
		{"untrusted", false, http.StatusTooManyRequests},
		{"trusted proxy", true, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.TrustProxy = tt.trustProxy
			site, _ := bootSite(t, cfg)
			site.get("/contact")

			// testDeps allows five posts per window; the sixth decides.
			vals := testutil.ContactValues()
			vals.Del("email")
			var rec *testutil.ResponseRecorder
			for i := 0; i < 6; i++ {
				req := testutil.NewFormRequest("/contact", vals)
				req.Header.Set("X-Forwarded-For", "198.51.100."+strconv.Itoa(i+1))
				rec = site.do(req)
			}
			rec.AssertStatus(t, tt.lastStatus)
		})
	}
}
