// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/resources"
	"github.com/dalemusser/balesite/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after the back ends
// are built and the catalog is checked, but before the HTTP handler is
// built. It registers the shared templates, applies the relay timeout,
// and publishes catalog sizes.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	timeouts.Configure(timeouts.Config{Relay: appCfg.RelayTimeout})
	deps.Metrics.SetCatalog(deps.Catalog.Counts())
	return nil
}
