// internal/app/features/locations/copy.go
package locations

import (
	"github.com/dalemusser/balesite/internal/app/system/blocks"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// Page copy. Every string takes the resolved name verbatim.

var stateHighlights = []string{
	"Reliable pickup schedules",
	"Competitive market rates",
	"Professional documentation",
	"Environmental compliance",
}

func stateFeatures(state string) []blocks.FeatureCard {
	return blocks.FeatureCards([]models.Feature{
		{Title: "Local Pickup", Description: "Regular routes throughout " + state + " for reliable service", Icon: "Truck"},
		{Title: "Best Rates", Description: "Competitive pricing based on " + state + " market conditions", Icon: "DollarSign"},
		{Title: "Local Team", Description: "Dedicated " + state + " specialists who understand your needs", Icon: "Users"},
		{Title: "Fast Response", Description: "Quick response times for all " + state + " service requests", Icon: "Clock"},
	})
}

func cityReasons(city string) []string {
	return []string{
		"Established local presence in " + city,
		"Understanding of " + city + " business needs",
		"Optimized routes for " + city + " efficiency",
		"Local support team available",
		"Flexible scheduling options",
		"Environmental compliance assurance",
	}
}

var cityHighlights = []models.Stat{
	{Label: "Response Time", Value: "24hrs"},
	{Label: "Customer Rating", Value: "5.0"},
}

func cityFeatures(city string) []blocks.FeatureCard {
	return blocks.FeatureCards([]models.Feature{
		{Title: "Local Pickup Routes", Description: "Regular scheduled pickups throughout " + city, Icon: "Truck"},
		{Title: "Competitive Pricing", Description: "Best rates in the " + city + " market", Icon: "DollarSign"},
		{Title: "Expert Team", Description: city + "-based specialists who know your area", Icon: "Users"},
		{Title: "Fast Response", Description: "Quick quotes and scheduling for " + city + " businesses", Icon: "Clock"},
	})
}

func citySteps(city string) []models.ProcessStep {
	return []models.ProcessStep{
		{Number: 1, Title: "Contact Us", Description: "Call or get a quote online for " + city + " service"},
		{Number: 2, Title: "Schedule Pickup", Description: "We'll arrange convenient pickup times for your " + city + " location"},
		{Number: 3, Title: "We Collect", Description: "Professional pickup and weighing at your " + city + " facility"},
		{Number: 4, Title: "Get Paid", Description: "Receive payment within 7 days of pickup"},
	}
}

func cityTestimonial(city, state string) blocks.TestimonialCard {
	return blocks.TestimonialFor(models.Testimonial{
		Name:     "Sarah Johnson",
		Company:  city + " Distribution Center",
		Role:     "Operations Manager",
		Content:  "The team has been fantastic to work with. They understand our " + city + " operations and always show up when scheduled. We've turned our cardboard waste from a cost center into a revenue stream.",
		Rating:   5,
		Location: city + ", " + state,
	})
}
