// internal/app/store/catalog/check.go
package catalog

import (
	"errors"
	"fmt"

	"github.com/dalemusser/balesite/internal/app/system/slug"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// ErrInvalid marks reference data that breaks a catalog invariant.
var ErrInvalid = errors.New("invalid catalog")

// Check verifies the invariants the resolver and renderer rely on. It
// returns every violation found, joined, each wrapping ErrInvalid.
func (c *Catalog) Check() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	d := c.data
	if len(d.ServiceAreas) == 0 {
		fail("no service areas")
	}

	states := make(map[string]bool, len(d.ServiceAreas))
	for _, a := range d.ServiceAreas {
		s := slug.Make(a.State)
		if a.State == "" {
			fail("service area with empty state name")
			continue
		}
		if states[s] {
			fail("duplicate service area %q", a.State)
		}
		states[s] = true

		cities := make(map[string]bool, len(a.Cities))
		for _, city := range a.Cities {
			cs := slug.Make(city)
			if city == "" {
				fail("%s: empty city name", a.State)
				continue
			}
			if cities[cs] {
				fail("%s: duplicate city %q", a.State, city)
			}
			cities[cs] = true
		}
	}

	seenPricing := make(map[string]bool, len(d.StatePricing))
	for _, p := range d.StatePricing {
		s := slug.Make(p.State)
		if seenPricing[s] {
			fail("duplicate pricing for %q", p.State)
		}
		seenPricing[s] = true
		if !states[s] {
			fail("pricing for %q has no service area", p.State)
		}
		if !p.PriceRange.Valid() {
			fail("pricing for %q: range %d-%d", p.State, p.PriceRange.Min, p.PriceRange.Max)
		}
	}
	if !d.NationalAverage.PriceRange.Valid() {
		fail("national average range %d-%d", d.NationalAverage.PriceRange.Min, d.NationalAverage.PriceRange.Max)
	}

	ids := make(map[string]bool, len(d.ServiceOfferings))
	for _, o := range d.ServiceOfferings {
		if ids[o.ID] {
			fail("duplicate service offering %q", o.ID)
		}
		ids[o.ID] = true
	}

	for _, t := range d.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			fail("testimonial %q: rating %d outside 1-5", t.ID, t.Rating)
		}
	}

	faqIDs := make(map[string]bool, len(d.FAQs))
	for _, f := range d.FAQs {
		if faqIDs[f.ID] {
			fail("duplicate faq %q", f.ID)
		}
		faqIDs[f.ID] = true
		if _, err := models.ParseFAQCategory(string(f.Category)); err != nil {
			fail("faq %q: %v", f.ID, err)
		}
	}

	prev := -1
	for _, tier := range d.VolumeTiers {
		low, _, ok := models.VolumeBucket(tier.VolumeRange).Bounds()
		if !ok {
			fail("tier %q: volume range %q has no leading tonnage", tier.ID, tier.VolumeRange)
			continue
		}
		if low <= prev {
			fail("tier %q is out of small-to-large order", tier.ID)
		}
		prev = low
	}

	for _, req := range d.Compliance {
		for _, st := range req.ApplicableStates {
			if st != models.AllStates && !states[slug.Make(st)] {
				fail("compliance %q names unknown state %q", req.ID, st)
			}
		}
	}

	for _, r := range d.Regions {
		for _, st := range r.States {
			if !states[slug.Make(st)] {
				fail("region %q names unknown state %q", r.Name, st)
			}
		}
	}

	return errors.Join(errs...)
}
