// internal/app/system/seo/pages.go
package seo

// DefaultKeywords apply to pages that declare none.
var DefaultKeywords = []string{
	"cardboard bale recycling",
	"cardboard waste pickup",
	"sell cardboard bales",
	"cardboard recycling services",
	"waste management",
	"cardboard disposal",
	"environmental recycling",
	"business recycling",
}

// Static page metadata keyed by route path.
var (
	Home = Page{Path: "/"}

	Services = Page{
		Subject:     "Services",
		Description: "Comprehensive cardboard bale recycling services including collection, processing, revenue sharing, compliance support, and equipment rental.",
		Keywords: []string{
			"cardboard bale collection",
			"cardboard processing",
			"revenue sharing",
			"equipment rental",
			"compliance support",
			"cardboard recycling services",
		},
		Path: "/services",
	}

	HowItWorks = Page{
		Subject:     "How It Works - Cardboard Bale Recycling Process",
		Description: "Learn how our cardboard bale recycling process works. From initial contact to payment, discover how we turn your cardboard waste into revenue.",
		Keywords: []string{
			"how cardboard recycling works",
			"cardboard bale process",
			"recycling steps",
			"cardboard pickup process",
			"cardboard waste management",
		},
		Path: "/how-it-works",
	}

	ServiceAreas = Page{
		Subject:     "Service Areas - Nationwide Cardboard Bale Recycling Coverage",
		Description: "Discover our nationwide cardboard bale recycling service areas. We serve all 50 states with professional pickup, processing, and revenue-sharing programs.",
		Keywords: []string{
			"cardboard recycling service areas",
			"nationwide cardboard pickup",
			"cardboard recycling coverage",
			"cardboard bale collection areas",
			"recycling service locations",
		},
		Path: "/service-areas",
	}

	Pricing = Page{
		Subject:     "Pricing",
		Description: "Current cardboard bale recycling prices by state. View real-time market rates across major US markets, typically $70-120 per ton.",
		Keywords: []string{
			"cardboard bale pricing",
			"cardboard recycling rates by state",
			"market prices per ton",
			"cardboard pricing",
			"recycling rates",
		},
		Path: "/pricing",
	}

	Resources = Page{
		Subject:     "Resources - Cardboard Recycling Guides, Tools & Information",
		Description: "Access comprehensive cardboard recycling resources including guides, calculators, market trends, and educational materials to maximize your recycling program.",
		Keywords: []string{
			"cardboard recycling guides",
			"recycling calculator",
			"cardboard market trends",
			"recycling resources",
			"sustainability guides",
			"waste management tools",
		},
		Path: "/resources",
	}

	Quote = Page{
		Subject:     "Get Quote",
		Description: "Get a free quote for cardboard bale recycling services. Calculate your potential revenue and start turning waste into profit.",
		Keywords: []string{
			"cardboard recycling quote",
			"free quote",
			"cardboard bale pickup",
			"recycling assessment",
			"waste management quote",
		},
		Path: "/quote",
	}

	Contact = Page{
		Subject:     "Contact Us",
		Description: "Questions about cardboard bale recycling? Contact our team for pickup schedules, pricing, and program details.",
		Path:        "/contact",
	}

	NotFound = Page{
		Subject:     "Page Not Found",
		Description: "The page you are looking for could not be found.",
		NoIndex:     true,
	}
)

// StaticPages lists the fixed routes in navigation order. The sitemap and
// balectl paths both walk it.
var StaticPages = []Page{Home, Services, HowItWorks, ServiceAreas, Pricing, Resources, Quote}

// State is the metadata of a state landing page. name must be the
// resolved state name; it is used verbatim everywhere.
func State(name, path string) Page {
	return Page{
		Subject:     name + " Cardboard Bale Recycling - Professional Pickup Services",
		Description: "Professional cardboard bale recycling services in " + name + ". Get competitive rates, reliable pickup, and turn your cardboard waste into revenue.",
		Keywords: []string{
			name + " cardboard recycling",
			"cardboard bale pickup " + name,
			name + " cardboard waste management",
			"sell cardboard bales " + name,
			"cardboard recycling services " + name,
		},
		Path: path,
	}
}

// City is the metadata of a city landing page.
func City(city, state, path string) Page {
	return Page{
		Subject:     city + ", " + state + " Cardboard Bale Recycling - Local Pickup Services",
		Description: "Professional cardboard bale recycling in " + city + ", " + state + ". Local pickup, competitive rates, and reliable service for your business.",
		Keywords: []string{
			city + " cardboard recycling",
			"cardboard bale pickup " + city,
			city + " " + state + " cardboard waste",
			"sell cardboard bales " + city,
			"cardboard recycling " + city + " " + state,
		},
		Path: path,
	}
}
