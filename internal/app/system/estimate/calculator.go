// internal/app/system/estimate/calculator.go
package estimate

import "github.com/dalemusser/balesite/internal/domain/models"

// Calculation is the pricing-page calculator result.
type Calculation struct {
	Bucket  models.VolumeBucket
	State   string // empty when the national range was used
	Rate    models.PriceRange
	Revenue Range

	// DisposalSavings is the monthly hauling cost the customer stops
	// paying; Total adds it to both ends of Revenue.
	DisposalSavings int
	Total           Range
}

// Calculate spans the whole bucket against a state's rate range:
// low*min through high*max. A nil pricing falls back to national.
// Negative disposal costs count as zero.
func Calculate(bucket models.VolumeBucket, pricing *models.StatePricing, national models.PriceRange, disposal int) Calculation {
	c := Calculation{Bucket: bucket, Rate: national}
	if pricing != nil {
		c.State = pricing.State
		c.Rate = pricing.PriceRange
	}
	if disposal > 0 {
		c.DisposalSavings = disposal
	}
	if low, high, ok := bucket.Bounds(); ok {
		c.Revenue = Range{Low: low * c.Rate.Min, High: high * c.Rate.Max}
	}
	c.Total = Range{Low: c.Revenue.Low + c.DisposalSavings, High: c.Revenue.High + c.DisposalSavings}
	return c
}
