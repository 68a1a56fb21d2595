// internal/app/features/quote/view.go
package quote

import (
	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/estimate"
	"github.com/dalemusser/balesite/internal/app/system/formutil"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// EquipmentNote is the baler rental price hint.
const EquipmentNote = "Typically $200-500/month"

type option struct {
	Value string
	Label string
}

// estimateView is the "Estimated Revenue" sidebar.
type estimateView struct {
	Volume    string
	Revenue   string
	Equipment bool
	Note      string
}

// estimateFor reads only the listed volume buckets; anything else is
// treated as not selected.
func estimateFor(monthlyVolume, equipmentNeeds string) estimateView {
	v := estimateView{Volume: "Not selected"}
	bucket, err := models.ParseVolumeBucket(monthlyVolume)
	if err == nil {
		v.Volume = string(bucket)
	}
	v.Revenue = estimate.Revenue(bucket).String()
	if equipmentNeeds == "true" {
		v.Equipment = true
		v.Note = EquipmentNote
	}
	return v
}

// formView is the quote form with its choices. The page embeds it and
// htmx swaps it whole.
type formView struct {
	Form        formutil.Form
	CSRFToken   string
	States      []option
	Volumes     []option
	Frequencies []option
	Estimate    estimateView
}

func newFormView(cat *catalog.Catalog, f formutil.Form, csrfToken string) formView {
	fv := formView{
		Form:      f,
		CSRFToken: csrfToken,
		Estimate:  estimateFor(f.Value("monthlyVolume"), f.Value("equipmentNeeds")),
	}
	for _, a := range cat.ServiceAreas() {
		fv.States = append(fv.States, option{Value: a.State, Label: a.State})
	}
	for _, b := range models.VolumeBuckets {
		fv.Volumes = append(fv.Volumes, option{Value: string(b), Label: b.Label()})
	}
	for _, p := range models.PickupFrequencies {
		fv.Frequencies = append(fv.Frequencies, option{Value: string(p), Label: p.Label()})
	}
	return fv
}

// nextStep is one item of "What Happens Next?".
type nextStep struct {
	Number      int
	Title       string
	Description string
}

var nextSteps = []nextStep{
	{1, "Quote Review", "We review your information within 4 hours"},
	{2, "Initial Contact", "Our team contacts you within 24 hours"},
	{3, "Site Assessment", "Optional on-site evaluation if needed"},
	{4, "Proposal", "Detailed pricing and service proposal"},
}

// textField is one text input of the quote form.
type textField struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Error       string
}

// Field is a template helper for the repeated text inputs.
func (fv formView) Field(name, label, typ, placeholder string) textField {
	return textField{
		Name:        name,
		Label:       label,
		Type:        typ,
		Placeholder: placeholder,
		Value:       fv.Form.Value(name),
		Error:       fv.Form.Error(name),
	}
}
