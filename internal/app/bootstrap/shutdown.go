// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/timeouts"
)

// Shutdown stops background workers. The only one is the rate limiter's
// sweeper; waiting for it is bounded by timeouts.Shutdown.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Limiter == nil {
		return nil
	}
	logger.Info("stopping form rate limiter")

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Shutdown(), logger, "stop rate limiter")
	defer cancel()

	done := make(chan struct{})
	go func() {
		deps.Limiter.Stop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
