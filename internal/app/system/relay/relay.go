// internal/app/system/relay/relay.go
//
// Package relay delivers lead submissions to the hosted forms relay
// (Web3Forms by default). It sends one JSON POST per submission and never
// retries; the visitor resubmits by hand if it fails.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultURL is the Web3Forms submit endpoint.
const DefaultURL = "https://api.web3forms.com/submit"

// DefaultTimeout bounds one relay round trip.
const DefaultTimeout = 10 * time.Second

var (
	// ErrRelay wraps every transport, status or decoding failure.
	ErrRelay = errors.New("relay submission failed")
	// ErrNotConfigured is returned when no access key is set.
	ErrNotConfigured = fmt.Errorf("%w: no access key configured", ErrRelay)
)

// Payload is one submission. Fields carries the form values under their
// form field names and is merged into the top level of the JSON body.
type Payload struct {
	Subject      string
	FromName     string
	Botcheck     string
	SubmissionID string
	Fields       map[string]string
}

// Result is the relay's verdict. Message is the relay's own text and is
// shown to the visitor verbatim when present.
type Result struct {
	OK      bool
	Message string
}

// Config configures a Client.
type Config struct {
	URL       string
	AccessKey string
	Timeout   time.Duration
}

// Client posts payloads to the relay. It is safe for concurrent use.
type Client struct {
	http      *resty.Client
	url       string
	accessKey string
	log       *zap.Logger
}

// New builds a Client. Empty URL and zero Timeout take the defaults.
func New(cfg Config, log *zap.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	hc := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &Client{http: hc, url: cfg.URL, accessKey: cfg.AccessKey, log: log}
}

// Configured reports whether an access key is set.
func (c *Client) Configured() bool { return c.accessKey != "" }

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit sends p. A decoded {success, message} body comes back as a Result
// with a nil error, whatever the HTTP status. Transport failures and bodies
// that are not relay JSON return OK=false and an error wrapping ErrRelay.
func (c *Client) Submit(ctx context.Context, p Payload) (Result, error) {
	if !c.Configured() {
		return Result{}, ErrNotConfigured
	}

	body := make(map[string]string, len(p.Fields)+5)
	for k, v := range p.Fields {
		body[k] = v
	}
	body["access_key"] = c.accessKey
	body["subject"] = p.Subject
	body["from_name"] = p.FromName
	body["botcheck"] = p.Botcheck
	body["submission_id"] = p.SubmissionID

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.url)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrRelay, err)
	}

	var out response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return Result{}, fmt.Errorf("%w: status %d: decode response: %w", ErrRelay, resp.StatusCode(), err)
	}
	c.log.Debug("relay responded",
		zap.String("submission_id", p.SubmissionID),
		zap.Int("status", resp.StatusCode()),
		zap.Bool("success", out.Success),
		zap.Duration("latency", time.Since(start)),
	)
	return Result{OK: out.Success, Message: out.Message}, nil
}
