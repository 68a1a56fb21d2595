package estimate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dalemusser/balesite/internal/domain/models"
)

func TestRevenue(t *testing.T) {
	tests := []struct {
		bucket models.VolumeBucket
		want   string
	}{
		{"50-100", "$5,000 - $6,000"},
		{"10-25", "$900 - $1,100"},
		{"2-5", "$160 - $200"},
		{"5-10", "$400 - $500"},
		{"25-50", "$2,250 - $2,750"},
		{"100+", "$10,000 - $12,000"},
		{"", "$0 - $0"},
		{"lots", "$0 - $0"},
	}
	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			if got := Revenue(tt.bucket).String(); got != tt.want {
				t.Errorf("Revenue(%q) = %q, want %q", tt.bucket, got, tt.want)
			}
		})
	}
}

func TestBand_Thresholds(t *testing.T) {
	tests := []struct {
		low  int
		want models.PriceRange
	}{
		{0, BandSmall},
		{9, BandSmall},
		{10, BandMedium},
		{49, BandMedium},
		{50, BandLarge},
		{1000, BandLarge},
	}
	for _, tt := range tests {
		if got := Band(tt.low); got != tt.want {
			t.Errorf("Band(%d) = %+v, want %+v", tt.low, got, tt.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := map[int]string{
		0:       "$0",
		999:     "$999",
		1000:    "$1,000",
		1234567: "$1,234,567",
		-1500:   "-$1,500",
	}
	for in, want := range tests {
		if got := Currency(in); got != want {
			t.Errorf("Currency(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestCalculate_StatePricing(t *testing.T) {
	ca := &models.StatePricing{State: "California", PriceRange: models.PriceRange{Min: 85, Max: 120}}
	national := models.PriceRange{Min: 70, Max: 120}

	got := Calculate("10-25", ca, national, 500)
	want := Calculation{
		Bucket:          "10-25",
		State:           "California",
		Rate:            models.PriceRange{Min: 85, Max: 120},
		Revenue:         Range{Low: 850, High: 3000},
		DisposalSavings: 500,
		Total:           Range{Low: 1350, High: 3500},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Calculate mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_NationalFallback(t *testing.T) {
	national := models.PriceRange{Min: 70, Max: 120}

	got := Calculate("100+", nil, national, -20)
	if got.State != "" || got.Rate != national {
		t.Errorf("expected national rate, got state %q rate %+v", got.State, got.Rate)
	}
	if got.Revenue != (Range{Low: 7000, High: 12000}) {
		t.Errorf("Revenue = %+v", got.Revenue)
	}
	if got.DisposalSavings != 0 || got.Total != got.Revenue {
		t.Errorf("negative disposal should count as zero: %+v", got)
	}
}

func TestCalculate_NoBucket(t *testing.T) {
	got := Calculate("", nil, models.PriceRange{Min: 70, Max: 120}, 100)
	if got.Revenue != (Range{}) {
		t.Errorf("Revenue = %+v, want zero", got.Revenue)
	}
	if got.Total.String() != "$100 - $100" {
		t.Errorf("Total = %q", got.Total.String())
	}
}

func TestPrice(t *testing.T) {
	if got := Price(1200); got != "$1,200.00" {
		t.Errorf("Price(1200) = %q", got)
	}
}
