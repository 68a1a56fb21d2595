// internal/app/system/leadform/rules.go
package leadform

import (
	"net/url"

	"github.com/dalemusser/balesite/internal/app/system/inputval"
)

// StateSet is the set of state names the quote form accepts.
type StateSet map[string]bool

// NewStateSet builds a StateSet from names.
func NewStateSet(names []string) StateSet {
	s := make(StateSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// ValidateContact applies the contact form rules.
func ValidateContact(in ContactInput) *inputval.Result {
	return inputval.Validate(in)
}

// ValidateQuote applies the quote form rules. A non-empty state must be
// one of states.
func ValidateQuote(in QuoteInput, states StateSet) *inputval.Result {
	res := inputval.Validate(in)
	if in.State != "" && !states[in.State] && res.For("state") == "" {
		res.Add("state", "Please select a valid state")
	}
	return res
}

var contactFields = map[string]bool{"name": true, "email": true, "company": true, "message": true}

var quoteFields = map[string]bool{
	"name": true, "email": true, "company": true, "address": true, "city": true,
	"state": true, "zipCode": true, "monthlyVolume": true, "currentDisposalCost": true,
	"pickupFrequency": true, "equipmentNeeds": true, "specialRequirements": true, "message": true,
}

// HasField reports whether the form has a validated field of that name.
func (k Kind) HasField(field string) bool {
	switch k {
	case KindContact:
		return contactFields[field]
	case KindQuote:
		return quoteFields[field]
	}
	return false
}

// ValidateField checks one field of a posted form, for blur validation. It
// returns "" when the field is valid. ok is false when the form has no
// such field.
func ValidateField(k Kind, v url.Values, field string, states StateSet) (msg string, ok bool) {
	if !k.HasField(field) {
		return "", false
	}
	var res *inputval.Result
	switch k {
	case KindContact:
		res = ValidateContact(DecodeContact(v))
	case KindQuote:
		res = ValidateQuote(DecodeQuote(v), states)
	}
	return res.For(field), true
}
