package testutil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// WithChiURLParams adds chi URL parameters to the request context, as
// pairs of key and value. Use this in handler tests that call a handler
// method directly instead of going through its router.
func WithChiURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// CatalogData is a small, complete data set: three states (one without
// pricing), one compliance rule for every state and one for Vermont only.
func CatalogData() catalog.Data {
	return catalog.Data{
		ServiceAreas: []models.ServiceArea{
			{State: "California", Cities: []string{"Los Angeles", "San Diego"}, Active: true},
			{State: "New York", Cities: []string{"New York City", "Buffalo"}, Active: true},
			{State: "Vermont", Cities: []string{"Burlington"}, Active: true},
		},
		StatePricing: []models.StatePricing{
			{
				State:        "California",
				Abbreviation: "CA",
				PriceRange:   models.PriceRange{Min: 85, Max: 120},
				MarketTrend:  models.TrendUp,
				LastUpdated:  models.NewDate(2024, 1, 15),
				MajorCities:  []string{"Los Angeles", "San Diego"},
				Notes:        "High demand from ports.",
			},
			{
				State:        "New York",
				Abbreviation: "NY",
				PriceRange:   models.PriceRange{Min: 80, Max: 110},
				MarketTrend:  models.TrendStable,
				LastUpdated:  models.NewDate(2024, 1, 15),
			},
		},
		NationalAverage: models.NationalAveragePrice{
			AveragePrice: 95,
			PriceRange:   models.PriceRange{Min: 70, Max: 120},
			Trend:        models.TrendUp,
			Description:  "National average for baled OCC.",
			LastUpdated:  models.NewDate(2024, 1, 15),
			Factors:      []string{"Bale quality", "Volume"},
		},
		ServiceOfferings: []models.ServiceOffering{
			{ID: "pickup", Title: "Bale Pickup", Description: "Scheduled pickup.", Features: []string{"Weekly routes"}, Icon: "Truck"},
			{ID: "equipment", Title: "Baler Rental", Description: "Balers on site.", Features: []string{"Maintenance"}, Icon: "Settings"},
			{ID: "revenue", Title: "Revenue Sharing", Description: "Get paid.", Features: []string{"Monthly payments"}, Icon: "DollarSign"},
			{ID: "compliance", Title: "Compliance", Description: "Paperwork handled.", Icon: "Shield"},
		},
		Testimonials: []models.Testimonial{
			{ID: "t1", Name: "Ana Ruiz", Company: "Ruiz Foods", Role: "Operations Manager", Content: "Great service.", Rating: 5, Location: "Los Angeles, CA"},
			{ID: "t2", Name: "Ben Cole", Company: "Cole Retail", Role: "Owner", Content: "Paid on time.", Rating: 4},
		},
		FAQs: []models.FAQItem{
			{ID: "f1", Question: "How does pickup work?", Answer: "We come to you.", Category: models.FAQGeneral},
			{ID: "f2", Question: "How are prices set?", Answer: "By market rate.", Category: models.FAQPricing},
			{ID: "f3", Question: "Do I need a permit?", Answer: "Sometimes.", Category: models.FAQCompliance},
		},
		VolumeTiers: []models.ServiceVolumeTier{
			{ID: "small", Name: "Small Business", VolumeRange: "2-10 tons/month", Features: []string{"Monthly pickup"}},
			{ID: "medium", Name: "Medium Business", VolumeRange: "10-50 tons/month", Features: []string{"Bi-weekly pickup"}},
			{ID: "large", Name: "Enterprise", VolumeRange: "50+ tons/month", Features: []string{"Weekly pickup"}},
		},
		Compliance: []models.ComplianceRequirement{
			{ID: "c1", Title: "Recycling Certificate", Description: "Proof of recycling.", ApplicableStates: []string{models.AllStates}, Required: true},
			{ID: "c2", Title: "Vermont Universal Recycling", Description: "Act 148.", ApplicableStates: []string{"Vermont"}, Required: false},
		},
		HomeBenefits: []models.Feature{
			{Title: "Generate Revenue", Description: "Up to $120 per ton.", Icon: "TrendingUp"},
		},
		ProcessSteps: []models.ProcessStep{
			{Number: 1, Title: "Contact Us", Description: "Tell us about your volume.", Details: []string{"Free assessment"}, Timeframe: "Day 1"},
		},
		Regions: []models.Region{
			{Name: "West Coast", States: []string{"California"}, HubCity: "Los Angeles"},
			{Name: "Northeast", States: []string{"New York", "Vermont"}, HubCity: "New York City"},
		},
		MajorCities: []models.MajorCity{{Name: "Los Angeles", Population: "4M", Businesses: "500K+"}},
		ResourceCategories: []models.ResourceCategory{
			{Title: "Guides", Description: "How-to guides.", Icon: "BookOpen", Resources: []models.Resource{{Title: "Baling 101", Type: "Guide", ReadTime: "5 min"}}},
		},
		QuickStats:    []models.StatGroup{{Title: "Industry", Stats: []models.Stat{{Label: "Recycling rate", Value: "91%"}}}},
		FeaturedTools: []models.Tool{{Title: "Revenue Calculator", Description: "Estimate revenue.", CTAText: "Try it", CTAURL: "/pricing#calculator"}},
		Articles:      []models.Article{{Title: "Why bale?", Author: "Staff", PublishDate: "2024-01-10", ReadTime: "4 min"}},
	}
}

// Catalog returns the fixture data set as an indexed Catalog.
func Catalog() *catalog.Catalog {
	return catalog.New(CatalogData())
}
