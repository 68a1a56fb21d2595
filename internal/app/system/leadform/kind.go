// internal/app/system/leadform/kind.go
package leadform

import (
	"fmt"

	"github.com/dalemusser/balesite/internal/domain/models"
)

// Kind distinguishes the two lead forms.
type Kind string

const (
	KindContact Kind = "contact"
	KindQuote   Kind = "quote"
)

// ParseKind maps a path segment to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindContact, KindQuote:
		return Kind(s), nil
	}
	return "", fmt.Errorf("lead form %q: %w", s, models.ErrUnknownValue)
}

// Subject is the relay email subject.
func (k Kind) Subject() string {
	switch k {
	case KindContact:
		return "New Contact Form Submission"
	case KindQuote:
		return "New Quote Request"
	}
	return "New Submission"
}

// SuccessTitle heads the success banner.
func (k Kind) SuccessTitle() string {
	switch k {
	case KindContact:
		return "Message Sent!"
	case KindQuote:
		return "Quote Request Submitted!"
	}
	return "Submitted!"
}

// SuccessMessage is the success banner text. Bot submissions get the same
// text, so it never depends on the relay response.
func (k Kind) SuccessMessage() string {
	switch k {
	case KindContact:
		return "Thank you! We'll contact you within 24 hours to discuss your recycling needs."
	case KindQuote:
		return "Thank you for your quote request. Our team will review your information and contact you within 24 hours with a detailed proposal."
	}
	return "Thank you!"
}

// ErrorTitle heads the error banner.
func (k Kind) ErrorTitle() string { return "Submission Error" }

// FallbackError is shown when the relay gives no message of its own.
const FallbackError = "There was an error submitting your request. Please try again or call us directly at " + models.SupportPhone + "."

// FromName is the relay sender name.
const FromName = models.SiteName
