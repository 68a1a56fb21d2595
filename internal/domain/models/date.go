// internal/domain/models/date.go
package models

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the on-disk format of reference-data dates.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalYAML accepts quoted or unquoted YYYY-MM-DD scalars.
func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseDate(n.Value)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Display renders the date the way US visitors expect, e.g. 1/15/2024.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("1/2/2006")
}
