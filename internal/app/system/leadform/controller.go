// internal/app/system/leadform/controller.go
package leadform

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/inputval"
	"github.com/dalemusser/balesite/internal/app/system/relay"
	"github.com/dalemusser/balesite/internal/app/system/timeouts"
)

// Sender delivers a payload. *relay.Client implements it.
type Sender interface {
	Submit(ctx context.Context, p relay.Payload) (relay.Result, error)
}

// Result labels how a submission ended, for logs and metrics.
type Result string

const (
	ResultInvalid Result = "invalid"
	ResultSent    Result = "sent"
	ResultFailed  Result = "failed"
	ResultSpam    Result = "spam"
)

// Outcome is what a handler needs to respond to a submission.
type Outcome struct {
	Kind         Kind
	Status       Status
	Errors       *inputval.Result // field errors; empty unless Result is ResultInvalid
	Result       Result
	SubmissionID string
	Latency      time.Duration // relay round trip; zero when the relay was not called
}

// Controller validates lead submissions and hands valid ones to the relay.
type Controller struct {
	Log    *zap.Logger
	Relay  Sender
	States StateSet
	Now    func() time.Time
	NewID  func() string
}

// NewController wires a Controller with the real clock and UUIDs.
func NewController(log *zap.Logger, sender Sender, states StateSet) *Controller {
	return &Controller{
		Log:    log,
		Relay:  sender,
		States: states,
		Now:    time.Now,
		NewID:  func() string { return uuid.NewString() },
	}
}

// SubmitContact runs one contact form submission.
func (c *Controller) SubmitContact(ctx context.Context, in ContactInput) Outcome {
	return c.submit(ctx, KindContact, in.Botcheck, func() (*inputval.Result, map[string]string) {
		return ValidateContact(in), in.Fields()
	})
}

// SubmitQuote runs one quote form submission.
func (c *Controller) SubmitQuote(ctx context.Context, in QuoteInput) Outcome {
	return c.submit(ctx, KindQuote, in.Botcheck, func() (*inputval.Result, map[string]string) {
		return ValidateQuote(in, c.States), in.Fields()
	})
}

func (c *Controller) submit(ctx context.Context, kind Kind, botcheck string, check func() (*inputval.Result, map[string]string)) Outcome {
	m := NewMachine(c.Now)
	out := Outcome{Kind: kind, Errors: &inputval.Result{}}

	_ = m.Validate()
	res, fields := check()
	if res.HasErrors() {
		_ = m.Reject()
		out.Status = m.Status()
		out.Errors = res
		out.Result = ResultInvalid
		return out
	}

	_ = m.Submit()
	out.SubmissionID = c.NewID()
	log := c.Log.With(zap.String("form", string(kind)), zap.String("submission_id", out.SubmissionID))

	if botcheck != "" {
		log.Info("honeypot filled; submission dropped")
		_ = m.Succeed(kind.SuccessMessage())
		out.Status = m.Status()
		out.Result = ResultSpam
		return out
	}

	rctx, cancel := timeouts.WithTimeout(ctx, timeouts.Relay(), log, "relay submit")
	defer cancel()

	start := time.Now()
	r, err := c.Relay.Submit(rctx, relay.Payload{
		Subject:      kind.Subject(),
		FromName:     FromName,
		Botcheck:     botcheck,
		SubmissionID: out.SubmissionID,
		Fields:       fields,
	})
	out.Latency = time.Since(start)

	switch {
	case err != nil:
		log.Warn("relay submission failed", zap.Error(err), zap.Duration("latency", out.Latency))
		_ = m.Fail(FallbackError)
		out.Result = ResultFailed
	case !r.OK:
		msg := r.Message
		if msg == "" {
			msg = FallbackError
		}
		log.Warn("relay rejected submission", zap.String("message", r.Message), zap.Duration("latency", out.Latency))
		_ = m.Fail(msg)
		out.Result = ResultFailed
	default:
		// Same text as the honeypot path; the relay's own message is not shown.
		log.Info("lead delivered", zap.Duration("latency", out.Latency))
		_ = m.Succeed(kind.SuccessMessage())
		out.Result = ResultSent
	}
	out.Status = m.Status()
	return out
}
