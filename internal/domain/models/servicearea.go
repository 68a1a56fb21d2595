// internal/domain/models/servicearea.go
package models

// ServiceArea is a state we serve and the cities we route pickups through.
// State names are unique across the directory; city names are unique within
// a state.
type ServiceArea struct {
	State  string   `yaml:"state"`
	Cities []string `yaml:"cities"`
	Active bool     `yaml:"active"`
}

// Region groups service-area states under one operations team.
type Region struct {
	Name            string   `yaml:"name"`
	States          []string `yaml:"states"`
	HubCity         string   `yaml:"hub_city"`
	Coverage        string   `yaml:"coverage"`
	AvgResponseTime string   `yaml:"avg_response_time"`
	Specialties     []string `yaml:"specialties"`
	Coordinator     string   `yaml:"coordinator"`
}

// MajorCity is a headline market shown on the service-areas page.
type MajorCity struct {
	Name       string `yaml:"name"`
	Population string `yaml:"population"`
	Businesses string `yaml:"businesses"`
}
