// internal/domain/models/pricing.go
package models

// PriceRange is a per-ton price band in whole dollars. Min <= Max, both > 0.
type PriceRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Valid reports whether the band is positive and ordered.
func (p PriceRange) Valid() bool {
	return p.Min > 0 && p.Min <= p.Max
}

// StatePricing is the published bale price for one state.
type StatePricing struct {
	State        string     `yaml:"state"`
	Abbreviation string     `yaml:"abbreviation"`
	PriceRange   PriceRange `yaml:"price_range"`
	MarketTrend  Trend      `yaml:"market_trend"`
	LastUpdated  Date       `yaml:"last_updated"`
	MajorCities  []string   `yaml:"major_cities"`
	Notes        string     `yaml:"notes"`
}

// NationalAveragePrice summarizes the market across every state.
type NationalAveragePrice struct {
	AveragePrice int        `yaml:"average_price"`
	PriceRange   PriceRange `yaml:"price_range"`
	Trend        Trend      `yaml:"trend"`
	Description  string     `yaml:"description"`
	LastUpdated  Date       `yaml:"last_updated"`
	Factors      []string   `yaml:"factors"`
}

// ServiceVolumeTier is a service level keyed by monthly tonnage. Tiers are
// kept small to large; the middle one is presented as the most common.
type ServiceVolumeTier struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	VolumeRange string   `yaml:"volume_range"`
	Features    []string `yaml:"features"`
	Benefits    []string `yaml:"benefits"`
}
