package blocks

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dalemusser/balesite/internal/domain/models"
)

func TestGlyphFor(t *testing.T) {
	tests := map[string]Icon{
		"Truck":      IconTruck,
		"DollarSign": IconDollarSign,
		"Wrench":     IconWrench,
		"Rocket":     IconSettings,
		"":           IconSettings,
	}
	for in, want := range tests {
		if got := GlyphFor(in); got != want {
			t.Errorf("GlyphFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTrendFor_EveryTrend(t *testing.T) {
	want := map[models.Trend]string{
		models.TrendUp:     "text-green-600",
		models.TrendDown:   "text-red-600",
		models.TrendStable: "text-gray-600",
	}
	for _, tr := range models.Trends {
		b := TrendFor(tr)
		if b.Class != want[tr] || b.Label != string(tr) {
			t.Errorf("TrendFor(%q) = %+v", tr, b)
		}
	}
}

func TestPricingFor(t *testing.T) {
	if PricingFor(nil) != nil {
		t.Fatal("PricingFor(nil) should be nil")
	}
	p := &models.StatePricing{
		State:       "California",
		PriceRange:  models.PriceRange{Min: 85, Max: 120},
		MarketTrend: models.TrendUp,
		LastUpdated: models.Date{Time: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		MajorCities: []string{"Los Angeles"},
		Notes:       "High demand",
	}
	want := &PricingPanel{
		State:       "California",
		Min:         85,
		Max:         120,
		Range:       "$85.00 - $120.00",
		Trend:       TrendBadge{Label: "up", Class: "text-green-600", Icon: "trending-up"},
		Updated:     "1/15/2024",
		MajorCities: []string{"Los Angeles"},
		Notes:       "High demand",
	}
	if diff := cmp.Diff(want, PricingFor(p)); diff != "" {
		t.Errorf("PricingFor mismatch (-want +got):\n%s", diff)
	}
}

func TestTiers_MiddleIsMostCommon(t *testing.T) {
	tiers := []models.ServiceVolumeTier{{ID: "small"}, {ID: "medium"}, {ID: "large"}}
	got := Tiers(tiers)
	for i, c := range got {
		if c.MostCommon != (i == 1) {
			t.Errorf("tier %d (%s) MostCommon = %v", i, c.ID, c.MostCommon)
		}
	}
	if single := Tiers(tiers[:1]); single[0].MostCommon {
		t.Error("a single tier should not be highlighted")
	}
}

func TestTestimonialFor(t *testing.T) {
	c := TestimonialFor(models.Testimonial{Name: "Élodie", Rating: 3})
	if c.Initial != "É" {
		t.Errorf("Initial = %q", c.Initial)
	}
	filled := 0
	for _, s := range c.Stars {
		if s.Filled {
			filled++
		}
	}
	if len(c.Stars) != 5 || filled != 3 {
		t.Errorf("stars = %d, filled = %d", len(c.Stars), filled)
	}
}

func TestFAQ_FilterByCategory(t *testing.T) {
	items := []models.FAQItem{
		{ID: "1", Category: models.FAQGeneral},
		{ID: "2", Category: models.FAQPricing},
		{ID: "3", Category: models.FAQCompliance},
	}
	if got := FAQ(items); len(got.Items) != 3 {
		t.Errorf("unfiltered = %d items", len(got.Items))
	}
	got := FAQ(items, models.FAQPricing, models.FAQCompliance)
	var ids []string
	for _, it := range got.Items {
		ids = append(ids, it.ID)
	}
	if diff := cmp.Diff([]string{"2", "3"}, ids); diff != "" {
		t.Errorf("filtered ids (-want +got):\n%s", diff)
	}
}

func TestComplianceCards(t *testing.T) {
	got := ComplianceCards([]models.ComplianceRequirement{{ID: "a", Required: true}, {ID: "b"}})
	if got[0].Badge != "Required" || got[1].Badge != "Recommended" {
		t.Errorf("badges = %q, %q", got[0].Badge, got[1].Badge)
	}
}

func TestTake(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	if got := Take(xs, 3); len(got) != 3 || got[2] != 3 {
		t.Errorf("Take(xs, 3) = %v", got)
	}
	if got := Take(xs, 10); len(got) != 4 {
		t.Errorf("Take(xs, 10) = %v", got)
	}
	if got := Take([]int(nil), 2); len(got) != 0 {
		t.Errorf("Take(nil, 2) = %v", got)
	}
}
