// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	contactfeature "github.com/dalemusser/balesite/internal/app/features/contact"
	errorsfeature "github.com/dalemusser/balesite/internal/app/features/errors"
	healthfeature "github.com/dalemusser/balesite/internal/app/features/health"
	homefeature "github.com/dalemusser/balesite/internal/app/features/home"
	howitworksfeature "github.com/dalemusser/balesite/internal/app/features/howitworks"
	leadsfeature "github.com/dalemusser/balesite/internal/app/features/leads"
	locationsfeature "github.com/dalemusser/balesite/internal/app/features/locations"
	pricingfeature "github.com/dalemusser/balesite/internal/app/features/pricing"
	quotefeature "github.com/dalemusser/balesite/internal/app/features/quote"
	resourcesfeature "github.com/dalemusser/balesite/internal/app/features/resources"
	serviceareasfeature "github.com/dalemusser/balesite/internal/app/features/serviceareas"
	servicesfeature "github.com/dalemusser/balesite/internal/app/features/services"
	sitemapfeature "github.com/dalemusser/balesite/internal/app/features/sitemap"
	"github.com/dalemusser/balesite/internal/app/system/limits"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, back-end construction, the
// catalog check, and the Startup hook have completed.
//
// The site boots the template engine, wraps every route in CSRF
// protection and the flash middleware, and mounts the page features.
// State and city pages sit at the top level next to the static pages.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()
	if appCfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(limits.Body(limits.MaxFormSize))
	if coreCfg.Env != "prod" {
		// Local http: skip the https-only Referer check.
		r.Use(plaintextCSRF)
	}
	r.Use(csrf.Protect(csrfKey(appCfg.SessionKey),
		csrf.Secure(coreCfg.Env == "prod"),
		csrf.Path("/"),
	))

	mountRoutes(r, appCfg, deps, viewdata.Templates{}, logger)

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	return r, nil
}

// mountRoutes attaches every feature to r. Split out of BuildHandler so
// the route table can be exercised without booting the template engine.
func mountRoutes(r chi.Router, appCfg AppConfig, deps DBDeps, render viewdata.Renderer, logger *zap.Logger) {
	sb := seo.NewBuilder(appCfg.BaseURL)
	m := deps.Metrics

	r.Use(deps.Flash.Middleware)

	// Not-found first so mounted subrouters inherit it.
	errorsHandler := errorsfeature.NewHandler(render, sb, logger)
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Catalog, deps.Relay, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	// Marketing pages
	homeHandler := homefeature.NewHandler(deps.Catalog, render, sb, m, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	servicesHandler := servicesfeature.NewHandler(deps.Catalog, render, sb, m, logger)
	r.Mount("/services", servicesfeature.Routes(servicesHandler))

	howHandler := howitworksfeature.NewHandler(deps.Catalog, render, sb, m, logger)
	r.Mount("/how-it-works", howitworksfeature.Routes(howHandler))

	areasHandler := serviceareasfeature.NewHandler(deps.Catalog, render, sb, m, logger)
	r.Mount("/service-areas", serviceareasfeature.Routes(areasHandler))

	pricingHandler := pricingfeature.NewHandler(deps.Catalog, render, sb, m, logger)
	r.Mount("/pricing", pricingfeature.Routes(pricingHandler))

	resourcesHandler := resourcesfeature.NewHandler(deps.Catalog, render, sb, m, logger)
	r.Mount("/resources", resourcesfeature.Routes(resourcesHandler))

	// Lead capture
	leadsHandler := leadsfeature.NewHandler(deps.Leads, deps.Limiter, deps.Flash, m, render, logger)
	r.Mount("/leads", leadsfeature.Routes(leadsHandler))

	quoteHandler := quotefeature.NewHandler(deps.Catalog, leadsHandler, render, sb, m, logger)
	r.Mount("/quote", quotefeature.Routes(quoteHandler))

	contactHandler := contactfeature.NewHandler(leadsHandler, render, sb, m, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Crawlers
	sitemapHandler := sitemapfeature.NewHandler(deps.Catalog, sb, logger)
	sitemapfeature.Mount(r, sitemapHandler)

	// /{state} and /{state}/{city}
	locationsHandler := locationsfeature.NewHandler(deps.Resolver, errorsHandler.NotFound, render, sb, m, logger)
	locationsfeature.Mount(r, locationsHandler)
}

// csrfKey derives the 32-byte CSRF key from the session key so the two
// cookies never share a secret.
func csrfKey(sessionKey string) []byte {
	sum := sha256.Sum256([]byte("csrf:" + sessionKey))
	return sum[:]
}

func plaintextCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
