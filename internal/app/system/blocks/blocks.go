// internal/app/system/blocks/blocks.go
//
// Package blocks holds the view models of the presentational blocks that
// page compositions assemble: hero, cards, trend badges, the pricing panel,
// volume tiers and the FAQ accordion. Builders here are pure; they never
// look anything up.
package blocks

import (
	"github.com/dalemusser/balesite/internal/app/system/estimate"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// CTA is a call-to-action link.
type CTA struct {
	Text string
	Href string
}

// Hero is the banner at the top of every page.
type Hero struct {
	Subtitle    string
	Title       string
	Description string
	Primary     CTA
	Secondary   *CTA
}

// Icon names a glyph in the static SVG sprite.
type Icon string

// Glyph names used by service and feature cards.
const (
	IconTruck      Icon = "truck"
	IconSettings   Icon = "settings"
	IconDollarSign Icon = "dollar-sign"
	IconShield     Icon = "shield"
	IconWrench     Icon = "wrench"

	// content pages
	IconTrendingUp  Icon = "trending-up"
	IconLeaf        Icon = "leaf"
	IconUsers       Icon = "users"
	IconClock       Icon = "clock"
	IconBookOpen    Icon = "book-open"
	IconBuilding    Icon = "building"
	IconCalculator  Icon = "calculator"
	IconFileText    Icon = "file-text"
	IconGlobe       Icon = "globe"
	IconPhone       Icon = "phone"
	IconRecycle     Icon = "recycle"
	IconScale       Icon = "scale"
	IconStar        Icon = "star"
	IconMapPin      Icon = "map-pin"
	IconCheckCircle Icon = "check-circle"
)

var glyphs = map[string]Icon{
	"Truck":       IconTruck,
	"Settings":    IconSettings,
	"DollarSign":  IconDollarSign,
	"Shield":      IconShield,
	"Wrench":      IconWrench,
	"TrendingUp":  IconTrendingUp,
	"Leaf":        IconLeaf,
	"Users":       IconUsers,
	"Clock":       IconClock,
	"BookOpen":    IconBookOpen,
	"Building":    IconBuilding,
	"Calculator":  IconCalculator,
	"FileText":    IconFileText,
	"Globe":       IconGlobe,
	"Phone":       IconPhone,
	"Recycle":     IconRecycle,
	"Scale":       IconScale,
	"Star":        IconStar,
	"MapPin":      IconMapPin,
	"CheckCircle": IconCheckCircle,
}

// GlyphFor maps a catalog icon name to a sprite id. Unknown names fall
// back to the settings glyph.
func GlyphFor(name string) Icon {
	if ic, ok := glyphs[name]; ok {
		return ic
	}
	return IconSettings
}

// TrendBadge renders a market trend.
type TrendBadge struct {
	Label string
	Class string
	Icon  string
}

// TrendFor returns the badge for t.
func TrendFor(t models.Trend) TrendBadge {
	switch t {
	case models.TrendUp:
		return TrendBadge{Label: string(t), Class: "text-green-600", Icon: "trending-up"}
	case models.TrendDown:
		return TrendBadge{Label: string(t), Class: "text-red-600", Icon: "trending-down"}
	case models.TrendStable:
		return TrendBadge{Label: string(t), Class: "text-gray-600", Icon: "minus"}
	}
	return TrendBadge{Label: string(t), Class: "text-gray-600", Icon: "minus"}
}

// PricingPanel is a state's published price.
type PricingPanel struct {
	State       string
	Min         int
	Max         int
	Range       string // "$85.00 - $120.00"
	Trend       TrendBadge
	Updated     string
	MajorCities []string
	Notes       string
}

// PricingFor builds the panel, or nil when the state has no pricing so
// templates can omit it.
func PricingFor(p *models.StatePricing) *PricingPanel {
	if p == nil {
		return nil
	}
	return &PricingPanel{
		State:       p.State,
		Min:         p.PriceRange.Min,
		Max:         p.PriceRange.Max,
		Range:       estimate.Price(p.PriceRange.Min) + " - " + estimate.Price(p.PriceRange.Max),
		Trend:       TrendFor(p.MarketTrend),
		Updated:     p.LastUpdated.Display(),
		MajorCities: p.MajorCities,
		Notes:       p.Notes,
	}
}

// PricingPanels builds one panel per record, in catalog order.
func PricingPanels(ps []models.StatePricing) []PricingPanel {
	out := make([]PricingPanel, 0, len(ps))
	for i := range ps {
		out = append(out, *PricingFor(&ps[i]))
	}
	return out
}

// Take returns at most the first n items.
func Take[T any](xs []T, n int) []T {
	if n < len(xs) {
		return xs[:n]
	}
	return xs
}
