package pricing

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/domain/models"
	"github.com/dalemusser/balesite/internal/testutil"
)

func newHandler(spy *testutil.RenderSpy) *Handler {
	return NewHandler(testutil.Catalog(), spy, seo.NewBuilder("https://example.com"), nil, zap.NewNop())
}

func TestServePricing(t *testing.T) {
	spy := &testutil.RenderSpy{}
	rec := testutil.NewRecorder()
	Routes(newHandler(spy)).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	call := spy.Last()
	if call.Name != "pricing" {
		t.Fatalf("template = %q", call.Name)
	}
	data := call.Data.(pageData)
	if data.National.Average != "$95.00" {
		t.Errorf("national average = %q", data.National.Average)
	}
	if data.National.Range != "$70.00 - $120.00" {
		t.Errorf("national range = %q", data.National.Range)
	}
	if len(data.States) != 2 || data.States[0].Range != "$85.00 - $120.00" {
		t.Errorf("state panels = %+v", data.States)
	}
	if !data.Tiers[1].MostCommon || data.Tiers[0].MostCommon {
		t.Errorf("middle tier should be most common: %+v", data.Tiers)
	}
	if len(data.FAQ.Items) != 1 || data.FAQ.Items[0].Category != models.FAQPricing {
		t.Errorf("faq = %+v", data.FAQ.Items)
	}
	if data.Estimate.Volume != "10-25 tons" || data.Estimate.Location != "National average" {
		t.Errorf("default estimate = %+v", data.Estimate)
	}
	if data.Contact.Form.Origin != "/pricing" {
		t.Errorf("contact origin = %q", data.Contact.Form.Origin)
	}
}

func TestServeEstimate(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  calcView
	}{
		{
			name:  "state with disposal",
			query: url.Values{"state": {"ca"}, "monthlyVolume": {"10-25"}, "disposal": {"500"}},
			want: calcView{
				Volume:   "10-25 tons",
				Location: "California",
				Rate:     "$85-$120/ton",
				Revenue:  "$850 - $3,000",
				Savings:  "$500",
				Total:    "$1,350 - $3,500",
			},
		},
		{
			name:  "unknown state uses national range",
			query: url.Values{"state": {"ZZ"}, "monthlyVolume": {"2-5"}},
			want: calcView{
				Volume:   "2-5 tons",
				Location: "National average",
				Rate:     "$70-$120/ton",
				Revenue:  "$140 - $600",
				Savings:  "$0",
				Total:    "$140 - $600",
			},
		},
		{
			name:  "no volume",
			query: url.Values{"disposal": {"abc"}},
			want: calcView{
				Location: "National average",
				Rate:     "$70-$120/ton",
				Revenue:  "$0 - $0",
				Savings:  "$0",
				Total:    "$0 - $0",
				Empty:    true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &testutil.RenderSpy{}
			rec := testutil.NewRecorder()
			Routes(newHandler(spy)).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/estimate?"+tt.query.Encode()))

			rec.AssertStatus(t, http.StatusOK)
			call := spy.Last()
			if !call.Snippet || call.Name != "pricing_estimate" {
				t.Fatalf("call = %+v", call)
			}
			if diff := cmp.Diff(tt.want, call.Data.(calcView)); diff != "" {
				t.Errorf("estimate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCalc(t *testing.T) {
	in := parseCalc(url.Values{"state": {" ny "}, "monthlyVolume": {"100+"}, "disposal": {"$1,200"}})
	want := calcInput{Abbreviation: "NY", Bucket: models.Volume100AndUp, Disposal: 1200}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("parseCalc mismatch (-want +got):\n%s", diff)
	}
}
