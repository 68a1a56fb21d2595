package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock lets tests move time without sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(t *testing.T, limit int, d time.Duration) (*Limiter, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	l := New(limit, d)
	l.now = clk.now
	t.Cleanup(l.Stop)
	return l, clk
}

func TestAllow_WindowLimit(t *testing.T) {
	l, clk := newTestLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d rejected, want allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("4th request allowed, want rejected")
	}
	if !l.Allow("5.6.7.8") {
		t.Error("other key should have its own window")
	}
	if got := l.Remaining("1.2.3.4"); got != 0 {
		t.Errorf("Remaining = %d, want 0", got)
	}
	if got := l.RetryAfter("1.2.3.4"); got != time.Minute {
		t.Errorf("RetryAfter = %v, want 1m", got)
	}

	clk.advance(time.Minute + time.Second)
	if !l.Allow("1.2.3.4") {
		t.Error("request after window reset rejected")
	}
	if got := l.Remaining("1.2.3.4"); got != 2 {
		t.Errorf("Remaining after reset = %d, want 2", got)
	}
}

func TestRemaining_UnknownKey(t *testing.T) {
	l, _ := newTestLimiter(t, 4, time.Minute)
	if got := l.Remaining("never-seen"); got != 4 {
		t.Errorf("Remaining = %d, want 4", got)
	}
}

func TestNew_MinimumLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 0, time.Minute)
	if l.Limit() != 1 {
		t.Errorf("Limit = %d, want 1", l.Limit())
	}
}

func TestSweep_RemovesExpired(t *testing.T) {
	l, clk := newTestLimiter(t, 5, time.Minute)
	l.Allow("old")
	clk.advance(2 * time.Minute)
	l.Allow("new")

	l.sweep()
	if _, ok := l.windows["old"]; ok {
		t.Error("expired window kept")
	}
	if len(l.windows) != 1 {
		t.Errorf("tracked keys = %d, want 1", len(l.windows))
	}
}

func TestStop_Idempotent(t *testing.T) {
	l := New(1, time.Millisecond)
	l.Stop()
	l.Stop()
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{"remote addr", "", "", "192.0.2.1:5555", "192.0.2.1"},
		{"remote addr without port", "", "", "192.0.2.1", "192.0.2.1"},
		{"ipv6 remote addr", "", "", "[2001:db8::1]:443", "2001:db8::1"},
		{"forwarded for ignored", "203.0.113.9, 10.0.0.1", "", "10.0.0.2:1234", "10.0.0.2"},
		{"real ip ignored", "", "198.51.100.7", "10.0.0.2:1234", "10.0.0.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/contact", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientIP_SpoofedHeaderKeepsKey(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute)

	first := httptest.NewRequest("POST", "/contact", nil)
	first.RemoteAddr = "192.0.2.50:40000"
	if !l.Allow(ClientIP(first)) {
		t.Fatal("first post rejected")
	}

	second := httptest.NewRequest("POST", "/contact", nil)
	second.RemoteAddr = "192.0.2.50:40001"
	second.Header.Set("X-Forwarded-For", "198.51.100.200")
	if l.Allow(ClientIP(second)) {
		t.Error("post with a forged X-Forwarded-For got a fresh window")
	}
}
