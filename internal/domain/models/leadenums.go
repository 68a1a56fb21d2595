// internal/domain/models/leadenums.go
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// PickupFrequency is how often a customer wants bales collected.
type PickupFrequency string

const (
	PickupWeekly   PickupFrequency = "weekly"
	PickupBiWeekly PickupFrequency = "bi-weekly"
	PickupMonthly  PickupFrequency = "monthly"
)

// PickupFrequencies lists every frequency in select-box order.
var PickupFrequencies = []PickupFrequency{PickupWeekly, PickupBiWeekly, PickupMonthly}

// ParsePickupFrequency maps form text to a PickupFrequency.
func ParsePickupFrequency(s string) (PickupFrequency, error) {
	switch PickupFrequency(s) {
	case PickupWeekly, PickupBiWeekly, PickupMonthly:
		return PickupFrequency(s), nil
	}
	return "", fmt.Errorf("pickup frequency %q: %w", s, ErrUnknownValue)
}

// Label is the select-box text.
func (f PickupFrequency) Label() string {
	switch f {
	case PickupWeekly:
		return "Weekly"
	case PickupBiWeekly:
		return "Bi-weekly"
	case PickupMonthly:
		return "Monthly"
	}
	return string(f)
}

// VolumeBucket is a monthly tonnage bracket picked on the quote form.
// Values are "<low>-<high>" or "<low>+".
type VolumeBucket string

const (
	Volume2To5     VolumeBucket = "2-5"
	Volume5To10    VolumeBucket = "5-10"
	Volume10To25   VolumeBucket = "10-25"
	Volume25To50   VolumeBucket = "25-50"
	Volume50To100  VolumeBucket = "50-100"
	Volume100AndUp VolumeBucket = "100+"
)

// VolumeBuckets lists every bucket small to large.
var VolumeBuckets = []VolumeBucket{
	Volume2To5, Volume5To10, Volume10To25, Volume25To50, Volume50To100, Volume100AndUp,
}

// ParseVolumeBucket maps form text to one of the published buckets.
func ParseVolumeBucket(s string) (VolumeBucket, error) {
	for _, b := range VolumeBuckets {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("volume bucket %q: %w", s, ErrUnknownValue)
}

// Label is the select-box text, e.g. "10-25 tons".
func (b VolumeBucket) Label() string {
	return string(b) + " tons"
}

// Bounds returns the low and high tonnage of a bucket string. Open-ended
// buckets report high == low. ok is false when no leading integer parses.
func (b VolumeBucket) Bounds() (low, high int, ok bool) {
	s := strings.TrimSpace(string(b))
	lowText, highText, hasDash := strings.Cut(s, "-")
	lowText = strings.TrimSuffix(lowText, "+")
	low, err := strconv.Atoi(leadingDigits(lowText))
	if err != nil {
		return 0, 0, false
	}
	high = low
	if hasDash {
		if h, err := strconv.Atoi(leadingDigits(highText)); err == nil && h >= low {
			high = h
		}
	}
	return low, high, true
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
