// internal/domain/models/offering.go
package models

// ServiceOffering is one of the services listed on the services page.
// Icon names a glyph; the renderer maps it to markup.
type ServiceOffering struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Benefits    []string `yaml:"benefits"`
	Icon        string   `yaml:"icon"`
}

// Testimonial is a customer quote. Rating is 1..5.
type Testimonial struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Company  string `yaml:"company"`
	Role     string `yaml:"role"`
	Content  string `yaml:"content"`
	Rating   int    `yaml:"rating"`
	Location string `yaml:"location"`
}

// FAQItem is a question and answer shown in the FAQ accordion.
type FAQItem struct {
	ID       string      `yaml:"id"`
	Question string      `yaml:"question"`
	Answer   string      `yaml:"answer"`
	Category FAQCategory `yaml:"category"`
}

// AllStates is the ApplicableStates sentinel meaning every state.
const AllStates = "All"

// ComplianceRequirement is a regulation customers must satisfy.
type ComplianceRequirement struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	ApplicableStates []string `yaml:"applicable_states"`
	Required         bool     `yaml:"required"`
	Documentation    []string `yaml:"documentation"`
}
