// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/flash"
	"github.com/dalemusser/balesite/internal/app/system/leadform"
	"github.com/dalemusser/balesite/internal/app/system/metrics"
	"github.com/dalemusser/balesite/internal/app/system/ratelimit"
	"github.com/dalemusser/balesite/internal/app/system/relay"
	"github.com/dalemusser/balesite/internal/app/system/resolver"
)

// DBDeps holds the site's back-end dependencies. There is no database;
// the reference catalog is in memory and leads leave through the relay.
type DBDeps struct {
	Catalog  *catalog.Catalog
	Resolver *resolver.Resolver
	Relay    *relay.Client
	Leads    *leadform.Controller
	Limiter  *ratelimit.Limiter
	Flash    *flash.Store
	Metrics  *metrics.Metrics // nil when metrics_enabled is false
}
