// internal/app/features/pricing/calculator.go
package pricing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/estimate"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// option is a select-box entry.
type option struct {
	Value    string
	Label    string
	Selected bool
}

// calculatorForm is the calculator's inputs, echoed back as selected.
type calculatorForm struct {
	States   []option
	Volumes  []option
	Disposal string
}

// calcView is the "Estimated Monthly Benefit" panel.
type calcView struct {
	Volume   string // "10-25 tons"
	Location string // state name or "National average"
	Rate     string // "$85-$120/ton"
	Revenue  string
	Savings  string
	Total    string
	Empty    bool // no volume picked yet
}

const defaultVolume = models.Volume10To25

// calcInput is a parsed calculator query.
type calcInput struct {
	Abbreviation string
	Bucket       models.VolumeBucket
	Disposal     int
}

// parseCalc reads state, monthlyVolume and disposal. Unknown values are
// dropped rather than rejected; the panel then shows the national range
// or an empty estimate.
func parseCalc(q url.Values) calcInput {
	in := calcInput{Abbreviation: strings.ToUpper(strings.TrimSpace(q.Get("state")))}
	if b, err := models.ParseVolumeBucket(strings.TrimSpace(q.Get("monthlyVolume"))); err == nil {
		in.Bucket = b
	}
	d := strings.TrimPrefix(strings.TrimSpace(q.Get("disposal")), "$")
	if n, err := strconv.Atoi(strings.ReplaceAll(d, ",", "")); err == nil && n > 0 {
		in.Disposal = n
	}
	return in
}

// calculate runs the estimator against the catalog.
func calculate(cat *catalog.Catalog, in calcInput) calcView {
	var sp *models.StatePricing
	if p, ok := cat.PricingByAbbreviation(in.Abbreviation); ok {
		sp = &p
	}
	c := estimate.Calculate(in.Bucket, sp, cat.NationalAverage().PriceRange, in.Disposal)

	v := calcView{
		Location: "National average",
		Rate:     estimate.Currency(c.Rate.Min) + "-" + estimate.Currency(c.Rate.Max) + "/ton",
		Revenue:  c.Revenue.String(),
		Savings:  estimate.Currency(c.DisposalSavings),
		Total:    c.Total.String(),
		Empty:    in.Bucket == "",
	}
	if c.State != "" {
		v.Location = c.State
	}
	if in.Bucket != "" {
		v.Volume = in.Bucket.Label()
	}
	return v
}

// form builds the select boxes with in's values selected.
func form(cat *catalog.Catalog, in calcInput) calculatorForm {
	f := calculatorForm{}
	for _, p := range cat.StatePricing() {
		f.States = append(f.States, option{Value: p.Abbreviation, Label: p.State, Selected: p.Abbreviation == in.Abbreviation})
	}
	for _, b := range models.VolumeBuckets {
		f.Volumes = append(f.Volumes, option{Value: string(b), Label: b.Label(), Selected: b == in.Bucket})
	}
	if in.Disposal > 0 {
		f.Disposal = strconv.Itoa(in.Disposal)
	}
	return f
}
