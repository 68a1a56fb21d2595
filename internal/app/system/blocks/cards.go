// internal/app/system/blocks/cards.go
package blocks

import "github.com/dalemusser/balesite/internal/domain/models"

// ServiceCard is an offering with its resolved glyph.
type ServiceCard struct {
	models.ServiceOffering
	Glyph Icon
}

// ServiceCards wraps offerings for rendering.
func ServiceCards(os []models.ServiceOffering) []ServiceCard {
	out := make([]ServiceCard, len(os))
	for i, o := range os {
		out[i] = ServiceCard{ServiceOffering: o, Glyph: GlyphFor(o.Icon)}
	}
	return out
}

// FeatureCard is a feature with its resolved glyph.
type FeatureCard struct {
	models.Feature
	Glyph Icon
}

// FeatureCards wraps features for rendering.
func FeatureCards(fs []models.Feature) []FeatureCard {
	out := make([]FeatureCard, len(fs))
	for i, f := range fs {
		out[i] = FeatureCard{Feature: f, Glyph: GlyphFor(f.Icon)}
	}
	return out
}

// Star is one of the five rating stars.
type Star struct{ Filled bool }

// TestimonialCard is a testimonial with its star row and avatar initial.
type TestimonialCard struct {
	models.Testimonial
	Stars   []Star
	Initial string
}

// TestimonialCards wraps testimonials for rendering.
func TestimonialCards(ts []models.Testimonial) []TestimonialCard {
	out := make([]TestimonialCard, len(ts))
	for i, t := range ts {
		out[i] = TestimonialFor(t)
	}
	return out
}

// TestimonialFor builds a single card.
func TestimonialFor(t models.Testimonial) TestimonialCard {
	stars := make([]Star, 5)
	for i := range stars {
		stars[i].Filled = i < t.Rating
	}
	var initial string
	for _, r := range t.Name {
		initial = string(r)
		break
	}
	return TestimonialCard{Testimonial: t, Stars: stars, Initial: initial}
}

// TierCard is a volume tier; MostCommon marks the middle one.
type TierCard struct {
	models.ServiceVolumeTier
	MostCommon bool
}

// Tiers marks the middle tier, by position, as most common.
func Tiers(ts []models.ServiceVolumeTier) []TierCard {
	out := make([]TierCard, len(ts))
	for i, t := range ts {
		out[i] = TierCard{ServiceVolumeTier: t, MostCommon: len(ts) > 1 && i == len(ts)/2}
	}
	return out
}

// ComplianceCard is a requirement as shown on a state page.
type ComplianceCard struct {
	models.ComplianceRequirement
	Badge string
}

// ComplianceCards labels each requirement Required or Recommended.
func ComplianceCards(cs []models.ComplianceRequirement) []ComplianceCard {
	out := make([]ComplianceCard, len(cs))
	for i, c := range cs {
		badge := "Recommended"
		if c.Required {
			badge = "Required"
		}
		out[i] = ComplianceCard{ComplianceRequirement: c, Badge: badge}
	}
	return out
}
