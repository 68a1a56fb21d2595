// internal/app/store/catalog/catalog.go
//
// Package catalog holds the site's read-only reference data: services,
// testimonials, FAQs, state pricing, volume tiers, the service-area
// directory, compliance requirements, and the supplementary page content.
//
// A Catalog is built once at startup and shared by pointer. Nothing in it
// is modified after construction, so it is safe for concurrent readers
// without locking. Slices returned by accessors must not be modified.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/dalemusser/balesite/internal/app/system/slug"
	"github.com/dalemusser/balesite/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Data is the reference data as laid out in catalog.yaml.
type Data struct {
	ServiceOfferings []models.ServiceOffering       `yaml:"service_offerings"`
	Testimonials     []models.Testimonial           `yaml:"testimonials"`
	FAQs             []models.FAQItem               `yaml:"faqs"`
	StatePricing     []models.StatePricing          `yaml:"state_pricing"`
	NationalAverage  models.NationalAveragePrice    `yaml:"national_average"`
	VolumeTiers      []models.ServiceVolumeTier     `yaml:"volume_tiers"`
	ServiceAreas     []models.ServiceArea           `yaml:"service_areas"`
	Compliance       []models.ComplianceRequirement `yaml:"compliance"`

	HomeBenefits       []models.Feature          `yaml:"home_benefits"`
	ServiceProcess     []models.ProcessStep      `yaml:"service_process"`
	Industries         []models.IndustrySolution `yaml:"industries"`
	Guarantees         []models.Guarantee        `yaml:"guarantees"`
	ProcessSteps       []models.ProcessStep      `yaml:"process_steps"`
	ProcessBenefits    []models.Feature          `yaml:"process_benefits"`
	Regions            []models.Region           `yaml:"regions"`
	AreaFeatures       []models.Feature          `yaml:"area_features"`
	MajorCities        []models.MajorCity        `yaml:"major_cities"`
	ResourceCategories []models.ResourceCategory `yaml:"resource_categories"`
	QuickStats         []models.StatGroup        `yaml:"quick_stats"`
	FeaturedTools      []models.Tool             `yaml:"featured_tools"`
	Articles           []models.Article          `yaml:"articles"`
}

// Catalog is the read-only reference data plus slug indexes built at load.
type Catalog struct {
	data Data

	stateIdx   map[string]int   // state slug -> ServiceAreas index
	cityIdx    []map[string]int // per area: city slug -> Cities index
	pricingIdx map[string]int   // state slug -> StatePricing index
}

// New indexes d and returns a Catalog. When two entries share a slug the
// first one wins, matching a front-to-back scan.
func New(d Data) *Catalog {
	c := &Catalog{
		data:       d,
		stateIdx:   make(map[string]int, len(d.ServiceAreas)),
		cityIdx:    make([]map[string]int, len(d.ServiceAreas)),
		pricingIdx: make(map[string]int, len(d.StatePricing)),
	}
	for i, a := range d.ServiceAreas {
		s := slug.Make(a.State)
		if _, dup := c.stateIdx[s]; !dup {
			c.stateIdx[s] = i
		}
		cities := make(map[string]int, len(a.Cities))
		for j, city := range a.Cities {
			cs := slug.Make(city)
			if _, dup := cities[cs]; !dup {
				cities[cs] = j
			}
		}
		c.cityIdx[i] = cities
	}
	for i, p := range d.StatePricing {
		s := slug.Make(p.State)
		if _, dup := c.pricingIdx[s]; !dup {
			c.pricingIdx[s] = i
		}
	}
	return c
}

// Load parses the catalog compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// LoadFile parses a catalog from disk, for operators overriding the
// embedded copy.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML reference data. Unknown keys and out-of-set enum
// values are errors.
func Parse(b []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var d Data
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", errors.Join(ErrInvalid, err))
	}
	return New(d), nil
}

// Area returns the service area whose state slugs to stateSlug.
func (c *Catalog) Area(stateSlug string) (models.ServiceArea, bool) {
	i, ok := c.stateIdx[stateSlug]
	if !ok {
		return models.ServiceArea{}, false
	}
	return c.data.ServiceAreas[i], true
}

// City returns the city in the given state whose name slugs to citySlug.
func (c *Catalog) City(stateSlug, citySlug string) (string, bool) {
	i, ok := c.stateIdx[stateSlug]
	if !ok {
		return "", false
	}
	j, ok := c.cityIdx[i][citySlug]
	if !ok {
		return "", false
	}
	return c.data.ServiceAreas[i].Cities[j], true
}

// Pricing returns the published price for the state with the given slug.
// Most states have none.
func (c *Catalog) Pricing(stateSlug string) (models.StatePricing, bool) {
	i, ok := c.pricingIdx[stateSlug]
	if !ok {
		return models.StatePricing{}, false
	}
	return c.data.StatePricing[i], true
}

// PricingByAbbreviation finds state pricing by postal code, e.g. "CA".
func (c *Catalog) PricingByAbbreviation(abbr string) (models.StatePricing, bool) {
	for _, p := range c.data.StatePricing {
		if p.Abbreviation == abbr {
			return p, true
		}
	}
	return models.StatePricing{}, false
}

// ComplianceFor returns the requirements that apply to state, in catalog
// order. Requirements marked All apply everywhere.
func (c *Catalog) ComplianceFor(state string) []models.ComplianceRequirement {
	s := slug.Make(state)
	var out []models.ComplianceRequirement
	for _, req := range c.data.Compliance {
		for _, st := range req.ApplicableStates {
			if st == models.AllStates || slug.Make(st) == s {
				out = append(out, req)
				break
			}
		}
	}
	return out
}

// Counts summarizes the directory size.
type Counts struct {
	States  int `json:"states"`
	Cities  int `json:"cities"`
	Pricing int `json:"pricing"`
}

// Counts reports how many states, cities and pricing records are loaded.
func (c *Catalog) Counts() Counts {
	n := 0
	for _, a := range c.data.ServiceAreas {
		n += len(a.Cities)
	}
	return Counts{States: len(c.data.ServiceAreas), Cities: n, Pricing: len(c.data.StatePricing)}
}

func (c *Catalog) ServiceAreas() []models.ServiceArea { return c.data.ServiceAreas }
func (c *Catalog) StatePricing() []models.StatePricing { return c.data.StatePricing }
func (c *Catalog) NationalAverage() models.NationalAveragePrice { return c.data.NationalAverage }
func (c *Catalog) ServiceOfferings() []models.ServiceOffering { return c.data.ServiceOfferings }
func (c *Catalog) Testimonials() []models.Testimonial { return c.data.Testimonials }
func (c *Catalog) FAQs() []models.FAQItem { return c.data.FAQs }
func (c *Catalog) VolumeTiers() []models.ServiceVolumeTier { return c.data.VolumeTiers }
func (c *Catalog) Compliance() []models.ComplianceRequirement { return c.data.Compliance }
func (c *Catalog) HomeBenefits() []models.Feature { return c.data.HomeBenefits }
func (c *Catalog) ServiceProcess() []models.ProcessStep { return c.data.ServiceProcess }
func (c *Catalog) Industries() []models.IndustrySolution { return c.data.Industries }
func (c *Catalog) Guarantees() []models.Guarantee { return c.data.Guarantees }
func (c *Catalog) ProcessSteps() []models.ProcessStep { return c.data.ProcessSteps }
func (c *Catalog) ProcessBenefits() []models.Feature { return c.data.ProcessBenefits }
func (c *Catalog) Regions() []models.Region { return c.data.Regions }
func (c *Catalog) AreaFeatures() []models.Feature { return c.data.AreaFeatures }
func (c *Catalog) MajorCities() []models.MajorCity { return c.data.MajorCities }
func (c *Catalog) ResourceCategories() []models.ResourceCategory { return c.data.ResourceCategories }
func (c *Catalog) QuickStats() []models.StatGroup { return c.data.QuickStats }
func (c *Catalog) FeaturedTools() []models.Tool { return c.data.FeaturedTools }
func (c *Catalog) Articles() []models.Article { return c.data.Articles }
