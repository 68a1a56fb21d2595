package models

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseTrend(t *testing.T) {
	for _, tr := range Trends {
		got, err := ParseTrend(string(tr))
		if err != nil || got != tr {
			t.Errorf("ParseTrend(%q) = %q, %v", tr, got, err)
		}
	}
	if _, err := ParseTrend("sideways"); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("ParseTrend(sideways) err = %v, want ErrUnknownValue", err)
	}
}

func TestFAQCategory_YAML(t *testing.T) {
	var v struct {
		Category FAQCategory `yaml:"category"`
	}
	if err := yaml.Unmarshal([]byte("category: pricing\n"), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Category != FAQPricing {
		t.Errorf("category = %q, want %q", v.Category, FAQPricing)
	}
	if err := yaml.Unmarshal([]byte("category: billing\n"), &v); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestVolumeBucket_Bounds(t *testing.T) {
	tests := []struct {
		in        VolumeBucket
		low, high int
		ok        bool
	}{
		{"2-5", 2, 5, true},
		{"50-100", 50, 100, true},
		{"100+", 100, 100, true},
		{"50 tons", 50, 50, true},
		{"", 0, 0, false},
		{"lots", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			low, high, ok := tt.in.Bounds()
			if low != tt.low || high != tt.high || ok != tt.ok {
				t.Errorf("Bounds() = %d, %d, %v; want %d, %d, %v", low, high, ok, tt.low, tt.high, tt.ok)
			}
		})
	}
}

func TestParseVolumeBucket(t *testing.T) {
	if _, err := ParseVolumeBucket("5-10"); err != nil {
		t.Errorf("ParseVolumeBucket(5-10) err = %v", err)
	}
	if _, err := ParseVolumeBucket("5-11"); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("ParseVolumeBucket(5-11) err = %v, want ErrUnknownValue", err)
	}
}

func TestDate(t *testing.T) {
	var v struct {
		Updated Date `yaml:"updated"`
	}
	if err := yaml.Unmarshal([]byte("updated: 2024-01-15\n"), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := v.Updated.Display(); got != "1/15/2024" {
		t.Errorf("Display() = %q, want %q", got, "1/15/2024")
	}
	if got := (Date{}).Display(); got != "" {
		t.Errorf("zero Display() = %q, want empty", got)
	}
}

func TestPriceRange_Valid(t *testing.T) {
	if !(PriceRange{Min: 85, Max: 120}).Valid() {
		t.Error("85-120 should be valid")
	}
	if (PriceRange{Min: 120, Max: 85}).Valid() {
		t.Error("120-85 should be invalid")
	}
	if (PriceRange{Min: 0, Max: 10}).Valid() {
		t.Error("0-10 should be invalid")
	}
}
