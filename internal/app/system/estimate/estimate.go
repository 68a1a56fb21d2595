// internal/app/system/estimate/estimate.go
//
// Package estimate computes the revenue ranges shown on the quote and
// pricing pages. Everything here is pure and safe for concurrent use.
package estimate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dalemusser/balesite/internal/domain/models"
)

// Rate bands in dollars per ton, keyed by the low end of a volume bucket.
var (
	BandLarge  = models.PriceRange{Min: 100, Max: 120} // 50 tons and up
	BandMedium = models.PriceRange{Min: 90, Max: 110}  // 10 tons and up
	BandSmall  = models.PriceRange{Min: 80, Max: 100}
)

var printer = message.NewPrinter(language.English)

// Range is a dollar range. The zero value prints as "$0 - $0".
type Range struct {
	Low  int
	High int
}

// String formats the range with US digit grouping, e.g. "$5,000 - $6,000".
func (r Range) String() string {
	return Currency(r.Low) + " - " + Currency(r.High)
}

// Currency formats whole dollars with US digit grouping.
func Currency(n int) string {
	if n < 0 {
		return "-" + printer.Sprintf("$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}

// Band picks the per-ton rate band for a bucket's low tonnage.
func Band(low int) models.PriceRange {
	switch {
	case low >= 50:
		return BandLarge
	case low >= 10:
		return BandMedium
	default:
		return BandSmall
	}
}

// Revenue estimates monthly revenue for a volume bucket using the low end
// of the bucket against the band's min and max rate. An empty or
// unparsable bucket yields the zero range.
func Revenue(bucket models.VolumeBucket) Range {
	low, _, ok := bucket.Bounds()
	if !ok {
		return Range{}
	}
	band := Band(low)
	return Range{Low: low * band.Min, High: low * band.Max}
}

// Price formats a per-ton price with cents, e.g. "$85.00".
func Price(n int) string {
	return Currency(n) + ".00"
}
