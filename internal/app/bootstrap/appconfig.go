// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// AppConfig carries what is specific to the marketing site: where leads
// are relayed, how the flash cookie is signed, how hard form posts are
// throttled, and where the reference catalog comes from.
type AppConfig struct {
	// Canonical origin used in meta tags and the sitemap
	BaseURL string // e.g., "https://cardboardbalerecycling.com"

	// Lead relay
	RelayURL       string        // Submit endpoint of the hosted forms relay
	RelayAccessKey string        // Relay access key (required in prod)
	RelayTimeout   time.Duration // Transport timeout for one relay call

	// Flash cookie and CSRF
	SessionKey  string // Signs the flash cookie; the CSRF key is derived from it
	SessionName string // Flash cookie name (default: balesite-flash)

	// Form throttling
	FormRateLimit  int           // Posts allowed per client IP per window
	FormRateWindow time.Duration // Window length
	TrustProxy     bool          // Take the client IP from X-Forwarded-For / X-Real-IP

	MetricsEnabled bool   // Mount /metrics
	CatalogPath    string // Optional YAML file replacing the embedded catalog
}
