package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/features/health"
	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/testutil"
)

type relayStub bool

func (r relayStub) Configured() bool { return bool(r) }

func serve(t *testing.T, h *health.Handler) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	health.Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec, body
}

func TestServe_OK(t *testing.T) {
	h := health.NewHandler(testutil.Catalog(), relayStub(true), zap.NewNop())
	rec, body := serve(t, h)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	want := map[string]any{
		"status":  "ok",
		"relay":   "configured",
		"catalog": map[string]any{"states": 3.0, "cities": 5.0, "pricing": 2.0},
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestServe_RelayUnconfigured(t *testing.T) {
	h := health.NewHandler(testutil.Catalog(), relayStub(false), zap.NewNop())
	rec, body := serve(t, h)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if body["relay"] != "unconfigured" {
		t.Errorf("relay = %v", body["relay"])
	}
}

func TestServe_InvalidCatalog(t *testing.T) {
	d := testutil.CatalogData()
	d.ServiceAreas = append(d.ServiceAreas, d.ServiceAreas[0])
	h := health.NewHandler(catalog.New(d), relayStub(true), zap.NewNop())
	rec, body := serve(t, h)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", rec.Code)
	}
	if body["status"] != "error" || body["error"] == "" {
		t.Errorf("body = %v", body)
	}
	if _, ok := body["catalog"]; ok {
		t.Error("catalog counts reported for an invalid catalog")
	}
}
