package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/balesite/internal/app/system/slug"
	"github.com/dalemusser/balesite/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := c.Check(); err != nil {
		t.Fatalf("embedded catalog fails Check: %v", err)
	}

	counts := c.Counts()
	if counts.States != 50 {
		t.Errorf("states = %d, want 50", counts.States)
	}
	if counts.Pricing != 8 {
		t.Errorf("pricing records = %d, want 8", counts.Pricing)
	}
	if got := len(c.VolumeTiers()); got != 3 {
		t.Errorf("volume tiers = %d, want 3", got)
	}
	if got := len(c.ServiceOfferings()); got != 5 {
		t.Errorf("service offerings = %d, want 5", got)
	}
}

func TestCatalog_AreaAndCity(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	a, ok := c.Area("new-york")
	if !ok || a.State != "New York" {
		t.Fatalf("Area(new-york) = %+v, %v", a, ok)
	}
	city, ok := c.City("new-york", "new-york-city")
	if !ok || city != "New York City" {
		t.Errorf("City(new-york, new-york-city) = %q, %v", city, ok)
	}
	city, ok = c.City("missouri", "st.-louis")
	if !ok || city != "St. Louis" {
		t.Errorf("City(missouri, st.-louis) = %q, %v", city, ok)
	}
	if _, ok := c.City("new-york", "los-angeles"); ok {
		t.Error("Los Angeles is not a New York city")
	}
	if _, ok := c.Area("New-York"); ok {
		t.Error("slug lookup must be exact")
	}
}

func TestCatalog_Pricing(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	p, ok := c.Pricing("california")
	if !ok {
		t.Fatal("expected California pricing")
	}
	want := models.PriceRange{Min: 85, Max: 120}
	if diff := cmp.Diff(want, p.PriceRange); diff != "" {
		t.Errorf("California range (-want +got):\n%s", diff)
	}
	if _, ok := c.Pricing("wyoming"); ok {
		t.Error("Wyoming has no published pricing")
	}
	if p, ok := c.PricingByAbbreviation("TX"); !ok || p.State != "Texas" {
		t.Errorf("PricingByAbbreviation(TX) = %q, %v", p.State, ok)
	}
}

func TestCatalog_ComplianceFor(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	ids := func(reqs []models.ComplianceRequirement) []string {
		var out []string
		for _, r := range reqs {
			out = append(out, r.ID)
		}
		return out
	}
	if diff := cmp.Diff([]string{"epa-reporting", "state-permits", "dot-regulations"}, ids(c.ComplianceFor("California"))); diff != "" {
		t.Errorf("California compliance (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"epa-reporting", "dot-regulations"}, ids(c.ComplianceFor("Ohio"))); diff != "" {
		t.Errorf("Ohio compliance (-want +got):\n%s", diff)
	}
}

func TestNew_FirstMatchWins(t *testing.T) {
	c := New(Data{
		ServiceAreas: []models.ServiceArea{
			{State: "Kansas", Cities: []string{"Wichita"}, Active: true},
			{State: "kansas", Cities: []string{"Topeka"}, Active: true},
		},
	})
	a, ok := c.Area("kansas")
	if !ok || a.State != "Kansas" {
		t.Errorf("Area(kansas) = %+v, want the first entry", a)
	}
	if err := c.Check(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Check() = %v, want ErrInvalid for duplicate state", err)
	}
}

func TestCheck_Violations(t *testing.T) {
	d := Data{
		ServiceAreas: []models.ServiceArea{
			{State: "Ohio", Cities: []string{"Columbus", "columbus"}},
		},
		StatePricing: []models.StatePricing{
			{State: "Ohio", PriceRange: models.PriceRange{Min: 110, Max: 70}},
			{State: "Atlantis", PriceRange: models.PriceRange{Min: 1, Max: 2}},
		},
		NationalAverage: models.NationalAveragePrice{PriceRange: models.PriceRange{Min: 70, Max: 120}},
		Testimonials:    []models.Testimonial{{ID: "t", Rating: 6}},
		VolumeTiers: []models.ServiceVolumeTier{
			{ID: "large", VolumeRange: "50+ tons/month"},
			{ID: "small", VolumeRange: "2-10 tons/month"},
		},
		Compliance: []models.ComplianceRequirement{
			{ID: "x", ApplicableStates: []string{"Ohio", "Narnia"}},
		},
	}
	err := New(d).Check()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Check() = %v, want ErrInvalid", err)
	}
	msg := err.Error()
	for _, want := range []string{
		`duplicate city "columbus"`,
		`pricing for "Ohio": range 110-70`,
		`pricing for "Atlantis" has no service area`,
		`rating 6 outside 1-5`,
		`tier "small" is out of small-to-large order`,
		`unknown state "Narnia"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Check() message missing %q\n%s", want, msg)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown trend", "state_pricing:\n- state: Ohio\n  market_trend: sideways\n"},
		{"unknown key", "service_areas:\n- state: Ohio\n  capital: Columbus\n"},
		{"bad date", "national_average:\n  last_updated: yesterday\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestIndexes_AgreeWithScan(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for _, a := range c.ServiceAreas() {
		for _, city := range a.Cities {
			got, ok := c.City(slug.Make(a.State), slug.Make(city))
			if !ok || got != city {
				t.Errorf("City(%q, %q) = %q, %v", a.State, city, got, ok)
			}
		}
	}
}
