// internal/app/system/blocks/faq.go
package blocks

import "github.com/dalemusser/balesite/internal/domain/models"

// FAQSection is the accordion block. Items open and close client side via
// <details>, so there is no server state.
type FAQSection struct {
	Title       string
	Description string
	Items       []models.FAQItem
}

// FAQ builds the accordion with its default heading, keeping only the
// given categories. No categories keeps every item.
func FAQ(items []models.FAQItem, cats ...models.FAQCategory) FAQSection {
	sec := FAQSection{
		Title:       "Frequently Asked Questions",
		Description: "Find answers to common questions about our cardboard recycling services.",
	}
	if len(cats) == 0 {
		sec.Items = items
		return sec
	}
	keep := make(map[models.FAQCategory]bool, len(cats))
	for _, c := range cats {
		keep[c] = true
	}
	for _, it := range items {
		if keep[it.Category] {
			sec.Items = append(sec.Items, it)
		}
	}
	return sec
}
