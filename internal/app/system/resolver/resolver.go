// internal/app/system/resolver/resolver.go
//
// Package resolver maps the {state} and {city} path segments of location
// pages to service-area records.
package resolver

import (
	"errors"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// ErrNotFound means the path names no state or city we serve. Handlers
// render it as a 404.
var ErrNotFound = errors.New("location not found")

// StateRecord is a resolved state page.
type StateRecord struct {
	Area       models.ServiceArea
	Slug       string
	Pricing    *models.StatePricing // nil when the state has no published price
	Compliance []models.ComplianceRequirement
}

// Name is the state name exactly as stored.
func (s StateRecord) Name() string { return s.Area.State }

// CityRecord is a resolved city page.
type CityRecord struct {
	State StateRecord
	City  string
	Slug  string
}

// Resolver resolves location slugs against a catalog.
type Resolver struct {
	cat *catalog.Catalog
}

// New returns a Resolver reading from cat.
func New(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// ResolveState finds the service area whose state slugs to stateSlug.
// Pricing and compliance are secondary lookups and may come back empty.
func (r *Resolver) ResolveState(stateSlug string) (StateRecord, error) {
	area, ok := r.cat.Area(stateSlug)
	if !ok {
		return StateRecord{}, ErrNotFound
	}
	rec := StateRecord{
		Area:       area,
		Slug:       stateSlug,
		Compliance: r.cat.ComplianceFor(area.State),
	}
	if p, ok := r.cat.Pricing(stateSlug); ok {
		rec.Pricing = &p
	}
	return rec, nil
}

// ResolveCity finds a city within a state. A known state with an unknown
// city is still ErrNotFound.
func (r *Resolver) ResolveCity(stateSlug, citySlug string) (CityRecord, error) {
	st, err := r.ResolveState(stateSlug)
	if err != nil {
		return CityRecord{}, err
	}
	city, ok := r.cat.City(stateSlug, citySlug)
	if !ok {
		return CityRecord{}, ErrNotFound
	}
	return CityRecord{State: st, City: city, Slug: citySlug}, nil
}
