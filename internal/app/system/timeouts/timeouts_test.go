package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Relay: 3 * time.Second})
	if got := Relay(); got != 3*time.Second {
		t.Errorf("Relay = %v, want 3s", got)
	}
	if got := Shutdown(); got != DefaultShutdown {
		t.Errorf("zero Shutdown should keep the default, got %v", got)
	}

	Reset()
	if Relay() != DefaultRelay {
		t.Errorf("Reset did not restore Relay, got %v", Relay())
	}
}

func TestWithTimeout_LogsOnDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, log, "relay submit")
	<-ctx.Done()
	cancel()

	entries := logs.FilterMessage("operation timed out").All()
	if len(entries) != 1 {
		t.Fatalf("got %d warnings, want 1", len(entries))
	}
	if op := entries[0].ContextMap()["operation"]; op != "relay submit" {
		t.Errorf("operation = %v", op)
	}
}

func TestWithTimeout_QuietOnCancel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	_, cancel := WithTimeout(context.Background(), time.Minute, zap.New(core), "relay submit")
	cancel()

	if logs.Len() != 0 {
		t.Errorf("got %d log entries, want none", logs.Len())
	}
}
