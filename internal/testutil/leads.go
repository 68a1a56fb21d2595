package testutil

import (
	"context"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/leadform"
	"github.com/dalemusser/balesite/internal/app/system/relay"
)

// Sender is a leadform.Sender that records payloads and answers with
// Result and Err.
type Sender struct {
	mu       sync.Mutex
	Result   relay.Result
	Err      error
	payloads []relay.Payload
}

// NewSender returns a Sender that accepts every payload.
func NewSender() *Sender {
	return &Sender{Result: relay.Result{OK: true, Message: "Email sent successfully!"}}
}

func (s *Sender) Submit(_ context.Context, p relay.Payload) (relay.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	return s.Result, s.Err
}

// Payloads returns everything submitted so far.
func (s *Sender) Payloads() []relay.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]relay.Payload(nil), s.payloads...)
}

// FixedNow is the clock Leads controllers run on.
var FixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// Leads returns a controller over the fixture states that sends to s,
// with a fixed clock and submission id "sub-1".
func Leads(s leadform.Sender) *leadform.Controller {
	var names []string
	for _, a := range CatalogData().ServiceAreas {
		names = append(names, a.State)
	}
	c := leadform.NewController(zap.NewNop(), s, leadform.NewStateSet(names))
	c.Now = func() time.Time { return FixedNow }
	c.NewID = func() string { return "sub-1" }
	return c
}

// ContactValues is a contact form post that passes validation.
func ContactValues() url.Values {
	return url.Values{
		"name":    {"Ana Ruiz"},
		"email":   {"ana@example.com"},
		"company": {"Acme Grocers"},
		"message": {"We bale about ten tons a month."},
		"origin":  {"/services"},
	}
}

// QuoteValues is a quote form post that passes validation.
func QuoteValues() url.Values {
	return url.Values{
		"name":            {"Ben Cole"},
		"email":           {"ben@example.com"},
		"company":         {"Cole Logistics"},
		"address":         {"1 Main St"},
		"city":            {"Los Angeles"},
		"state":           {"California"},
		"zipCode":         {"90001"},
		"monthlyVolume":   {"10-25"},
		"pickupFrequency": {"weekly"},
	}
}
