// internal/domain/models/enums.go
package models

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownValue is returned when text does not name a member of a closed set.
var ErrUnknownValue = errors.New("unknown value")

// Trend is the direction of a market price.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Trends lists every Trend in display order.
var Trends = []Trend{TrendUp, TrendDown, TrendStable}

// ParseTrend maps text to a Trend.
func ParseTrend(s string) (Trend, error) {
	switch Trend(s) {
	case TrendUp, TrendDown, TrendStable:
		return Trend(s), nil
	}
	return "", fmt.Errorf("market trend %q: %w", s, ErrUnknownValue)
}

// UnmarshalYAML rejects trends outside the closed set.
func (t *Trend) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseTrend(n.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// FAQCategory groups FAQ entries.
type FAQCategory string

const (
	FAQGeneral    FAQCategory = "general"
	FAQPricing    FAQCategory = "pricing"
	FAQProcess    FAQCategory = "process"
	FAQCompliance FAQCategory = "compliance"
)

// FAQCategories lists every category in display order.
var FAQCategories = []FAQCategory{FAQGeneral, FAQPricing, FAQProcess, FAQCompliance}

// ParseFAQCategory maps text to an FAQCategory.
func ParseFAQCategory(s string) (FAQCategory, error) {
	switch FAQCategory(s) {
	case FAQGeneral, FAQPricing, FAQProcess, FAQCompliance:
		return FAQCategory(s), nil
	}
	return "", fmt.Errorf("faq category %q: %w", s, ErrUnknownValue)
}

// UnmarshalYAML rejects categories outside the closed set.
func (c *FAQCategory) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseFAQCategory(n.Value)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Label is the human-facing category name.
func (c FAQCategory) Label() string {
	switch c {
	case FAQGeneral:
		return "General"
	case FAQPricing:
		return "Pricing"
	case FAQProcess:
		return "Process"
	case FAQCompliance:
		return "Compliance"
	}
	return string(c)
}
