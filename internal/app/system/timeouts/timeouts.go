// Package timeouts provides centralized timeout values for outbound calls
// and lifecycle steps.
//
// Values are set once at startup with Configure (the relay timeout comes
// from the relay_timeout config key). If not configured, defaults are used.
//
// Guidelines for choosing a timeout:
//   - Relay: one submission to the hosted forms relay
//   - Shutdown: draining background workers on exit
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultRelay    = 10 * time.Second
	DefaultShutdown = 5 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	relay    = DefaultRelay
	shutdown = DefaultShutdown
)

// Relay returns the deadline for one relay submission.
func Relay() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return relay
}

// Shutdown returns how long shutdown steps may take.
func Shutdown() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return shutdown
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Relay    time.Duration
	Shutdown time.Duration
}

// Configure sets custom timeout values. Zero values in the config are
// ignored, keeping the current (or default) values. Call it during startup
// before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Relay > 0 {
		relay = cfg.Relay
	}
	if cfg.Shutdown > 0 {
		shutdown = cfg.Shutdown
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	relay = DefaultRelay
	shutdown = DefaultShutdown
}

// WithTimeout creates a context with timeout and returns a cancel function
// that logs a warning if the context ended because the deadline passed.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Relay(), h.Log, "relay submit")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
