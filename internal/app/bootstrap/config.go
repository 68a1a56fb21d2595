// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/inputval"
	"github.com/dalemusser/balesite/internal/app/system/relay"
)

// devSessionKey is the placeholder session key. It is refused in prod.
const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for the site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: relay_access_key, session_name, etc.
//   - Environment variables: BALESITE_RELAY_ACCESS_KEY, BALESITE_SESSION_NAME, etc.
//   - Command-line flags: --relay_access_key, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "base_url", Default: "https://cardboardbalerecycling.com", Desc: "Canonical site origin for meta tags and the sitemap"},

	// Lead relay
	{Name: "relay_url", Default: relay.DefaultURL, Desc: "Forms relay submit endpoint"},
	{Name: "relay_access_key", Default: "", Desc: "Forms relay access key (required in prod)"},
	{Name: "relay_timeout", Default: "10s", Desc: "Timeout for one relay submission (e.g., 10s)"},

	// Flash cookie
	{Name: "session_key", Default: devSessionKey, Desc: "Flash cookie signing key; also seeds the CSRF key (must be strong in production)"},
	{Name: "session_name", Default: "balesite-flash", Desc: "Flash cookie name"},

	// Form throttling
	{Name: "form_rate_limit", Default: 5, Desc: "Form posts allowed per client IP per window"},
	{Name: "form_rate_window", Default: "1m", Desc: "Form rate limit window (e.g., 1m, 30s)"},
	{Name: "trust_proxy", Default: false, Desc: "Read the client IP from forwarding headers (enable only behind a proxy that sets them)"},

	{Name: "metrics_enabled", Default: true, Desc: "Serve Prometheus metrics at /metrics"},
	{Name: "catalog_path", Default: "", Desc: "YAML file overriding the embedded reference catalog (blank uses the embedded copy)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, BALESITE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BALESITE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BaseURL: appValues.String("base_url"),

		RelayURL:       appValues.String("relay_url"),
		RelayAccessKey: appValues.String("relay_access_key"),
		RelayTimeout:   appValues.Duration("relay_timeout", relay.DefaultTimeout),

		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),

		FormRateLimit:  appValues.Int("form_rate_limit"),
		FormRateWindow: appValues.Duration("form_rate_window", time.Minute),
		TrustProxy:     appValues.Bool("trust_proxy"),

		MetricsEnabled: appValues.Bool("metrics_enabled"),
		CatalogPath:    appValues.String("catalog_path"),
	}

	if appCfg.RelayAccessKey == "" {
		logger.Warn("relay_access_key is empty; lead forms will report a delivery error")
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Every problem is reported, not just the first.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validate(coreCfg.Env, appCfg); err != nil {
		logger.Error("invalid app config", zap.Error(err))
		return err
	}
	return nil
}

func validate(env string, cfg AppConfig) error {
	var errs []error
	urls := configURLs{BaseURL: cfg.BaseURL, RelayURL: cfg.RelayURL}
	for _, fe := range inputval.Validate(urls).Errors {
		errs = append(errs, errors.New(fe.Message))
	}
	if cfg.FormRateLimit < 1 {
		errs = append(errs, fmt.Errorf("form_rate_limit must be at least 1, got %d", cfg.FormRateLimit))
	}
	if cfg.FormRateWindow <= 0 {
		errs = append(errs, fmt.Errorf("form_rate_window must be positive, got %s", cfg.FormRateWindow))
	}
	if cfg.SessionKey == "" {
		errs = append(errs, errors.New("session_key is required"))
	}
	if env == "prod" {
		if cfg.RelayAccessKey == "" {
			errs = append(errs, errors.New("relay_access_key is required in prod"))
		}
		if cfg.SessionKey == devSessionKey {
			errs = append(errs, errors.New("session_key must be changed from the development default in prod"))
		}
	}
	return errors.Join(errs...)
}

// configURLs carries the URL settings through the same validator the
// lead forms use.
type configURLs struct {
	BaseURL  string `form:"base_url" validate:"httpurl" label:"base_url"`
	RelayURL string `form:"relay_url" validate:"httpurl" label:"relay_url"`
}
