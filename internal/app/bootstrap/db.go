// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/flash"
	"github.com/dalemusser/balesite/internal/app/system/leadform"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/ratelimit"
	"github.com/dalemusser/balesite/internal/app/system/relay"
	"github.com/dalemusser/balesite/internal/app/system/resolver"
)

// ConnectDB builds the back ends: it loads the catalog and constructs the
// relay client, the lead controller, the form limiter, and the flash store.
// Nothing here dials out; the relay is only contacted per submission.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	cat, err := loadCatalog(appCfg.CatalogPath)
	if err != nil {
		logger.Error("catalog load failed", zap.String("path", appCfg.CatalogPath), zap.Error(err))
		return DBDeps{}, err
	}
	counts := cat.Counts()
	logger.Info("catalog loaded",
		zap.String("source", catalogSource(appCfg.CatalogPath)),
		zap.Int("states", counts.States),
		zap.Int("cities", counts.Cities),
		zap.Int("pricing", counts.Pricing))

	fl, err := flash.New(appCfg.SessionKey, appCfg.SessionName, coreCfg.Env == "prod", logger)
	if err != nil {
		return DBDeps{}, err
	}

	rc := relay.New(relay.Config{
		URL:       appCfg.RelayURL,
		AccessKey: appCfg.RelayAccessKey,
		Timeout:   appCfg.RelayTimeout,
	}, logger)

	var m *metrics.Metrics
	if appCfg.MetricsEnabled {
		m = metrics.New()
	}

	return DBDeps{
		Catalog:  cat,
		Resolver: resolver.New(cat),
		Relay:    rc,
		Leads:    leadform.NewController(logger, rc, leadform.NewStateSet(stateNames(cat))),
		Limiter:  ratelimit.New(appCfg.FormRateLimit, appCfg.FormRateWindow),
		Flash:    fl,
		Metrics:  m,
	}, nil
}

// EnsureSchema checks the catalog invariants the resolver and pages rely
// on. A broken catalog aborts startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := deps.Catalog.Check(); err != nil {
		logger.Error("catalog check failed", zap.Error(err))
		return fmt.Errorf("catalog check: %w", err)
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(path)
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func stateNames(cat *catalog.Catalog) []string {
	areas := cat.ServiceAreas()
	names := make([]string, 0, len(areas))
	for _, a := range areas {
		names = append(names, a.State)
	}
	return names
}
