// internal/domain/models/content.go
package models

// Feature is a titled blurb with an optional glyph and headline stat.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Stat        string `yaml:"stat"`
}

// ProcessStep is one numbered step of the pickup process.
type ProcessStep struct {
	Number      int      `yaml:"number"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Details     []string `yaml:"details"`
	Timeframe   string   `yaml:"timeframe"`
}

// IndustrySolution is a tailored program for one kind of business.
type IndustrySolution struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
}

// Guarantee is a headline service commitment.
type Guarantee struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Resource is a guide, tool or template listed on the resources page.
type Resource struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	ReadTime    string `yaml:"read_time"`
}

// ResourceCategory groups resources under a heading.
type ResourceCategory struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"icon"`
	Resources   []Resource `yaml:"resources"`
}

// Stat is a labeled figure.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// StatGroup is a titled set of figures.
type StatGroup struct {
	Title string `yaml:"title"`
	Stats []Stat `yaml:"stats"`
}

// Tool is a featured interactive tool.
type Tool struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Features    []string `yaml:"features"`
	CTAText     string   `yaml:"cta_text"`
	CTAURL      string   `yaml:"cta_url"`
}

// Article is an educational piece on the resources page.
type Article struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	PublishDate string   `yaml:"publish_date"`
	ReadTime    string   `yaml:"read_time"`
	Tags        []string `yaml:"tags"`
}
