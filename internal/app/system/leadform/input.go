// internal/app/system/leadform/input.go
package leadform

import (
	"net/url"

	"github.com/dalemusser/balesite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/balesite/internal/app/system/normalize"
)

// ContactInput is the general contact form. The struct tags are the
// field rules; see inputval for the tag vocabulary.
type ContactInput struct {
	Name     string `form:"name" validate:"required,max=80" label:"Name"`
	Email    string `form:"email" validate:"required,siteemail" label:"Email"`
	Company  string `form:"company" validate:"required,max=120" label:"Company name"`
	Message  string `form:"message" validate:"required,min=10,max=1000" label:"Message"`
	Botcheck string `form:"botcheck" validate:"-"`
}

// QuoteInput is the detailed quote request form.
type QuoteInput struct {
	Name                string `form:"name" validate:"required,max=80" label:"Name"`
	Email               string `form:"email" validate:"required,siteemail" label:"Email"`
	Company             string `form:"company" validate:"required,max=120" label:"Company name"`
	Address             string `form:"address" validate:"required,max=200" label:"Address"`
	City                string `form:"city" validate:"required,max=100" label:"City"`
	State               string `form:"state" validate:"required" label:"State"`
	ZipCode             string `form:"zipCode" validate:"required,zip" label:"ZIP code"`
	MonthlyVolume       string `form:"monthlyVolume" validate:"required,volumebucket" label:"Monthly volume"`
	CurrentDisposalCost string `form:"currentDisposalCost" validate:"omitempty,nonnegnum" label:"Current disposal cost"`
	PickupFrequency     string `form:"pickupFrequency" validate:"required,pickupfreq" label:"Pickup frequency"`
	EquipmentNeeds      string `form:"equipmentNeeds" validate:"omitempty,boolflag" label:"Equipment rental"`
	SpecialRequirements string `form:"specialRequirements" validate:"max=2000" label:"Special requirements"`
	Message             string `form:"message" validate:"max=1000" label:"Message"`
	Botcheck            string `form:"botcheck" validate:"-"`
}

// DecodeContact reads and normalizes a posted contact form.
func DecodeContact(v url.Values) ContactInput {
	return ContactInput{
		Name:     normalize.Name(v.Get("name")),
		Email:    normalize.Email(v.Get("email")),
		Company:  normalize.Name(v.Get("company")),
		Message:  normalize.Text(v.Get("message")),
		Botcheck: v.Get("botcheck"),
	}
}

// DecodeQuote reads and normalizes a posted quote form. equipmentNeeds
// stays empty when the radio was left unset.
func DecodeQuote(v url.Values) QuoteInput {
	in := QuoteInput{
		Name:                normalize.Name(v.Get("name")),
		Email:               normalize.Email(v.Get("email")),
		Company:             normalize.Name(v.Get("company")),
		Address:             normalize.Name(v.Get("address")),
		City:                normalize.Name(v.Get("city")),
		State:               normalize.Choice(v.Get("state")),
		ZipCode:             normalize.Choice(v.Get("zipCode")),
		MonthlyVolume:       normalize.Choice(v.Get("monthlyVolume")),
		CurrentDisposalCost: normalize.Choice(v.Get("currentDisposalCost")),
		PickupFrequency:     normalize.Choice(v.Get("pickupFrequency")),
		SpecialRequirements: normalize.Text(v.Get("specialRequirements")),
		Message:             normalize.Text(v.Get("message")),
		Botcheck:            v.Get("botcheck"),
	}
	if e := v.Get("equipmentNeeds"); e != "" {
		in.EquipmentNeeds = normalize.Checkbox(e)
	}
	return in
}

// Fields is the relay field map. Free text has any markup stripped.
func (in ContactInput) Fields() map[string]string {
	return map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"company": htmlsanitize.Text(in.Company),
		"message": htmlsanitize.Text(in.Message),
	}
}

// Fields is the relay field map. Empty optional fields are left out.
func (in QuoteInput) Fields() map[string]string {
	f := map[string]string{
		"name":            in.Name,
		"email":           in.Email,
		"company":         htmlsanitize.Text(in.Company),
		"address":         htmlsanitize.Text(in.Address),
		"city":            htmlsanitize.Text(in.City),
		"state":           in.State,
		"zipCode":         in.ZipCode,
		"monthlyVolume":   in.MonthlyVolume,
		"pickupFrequency": in.PickupFrequency,
	}
	optional := map[string]string{
		"currentDisposalCost": in.CurrentDisposalCost,
		"equipmentNeeds":      in.EquipmentNeeds,
		"specialRequirements": htmlsanitize.Text(in.SpecialRequirements),
		"message":             htmlsanitize.Text(in.Message),
	}
	for k, v := range optional {
		if v != "" {
			f[k] = v
		}
	}
	return f
}
