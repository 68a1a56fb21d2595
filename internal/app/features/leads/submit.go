// internal/app/features/leads/submit.go
package leads

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/flash"
	"github.com/dalemusser/balesite/internal/app/system/formutil"
	"github.com/dalemusser/balesite/internal/app/system/leadform"
	"github.com/dalemusser/balesite/internal/app/system/ratelimit"
	"github.com/dalemusser/balesite/internal/app/system/viewdata"
)

// RateLimitedMessage is the banner shown when a client posts too often.
const RateLimitedMessage = "Too many submissions. Please wait a few minutes and try again, or call us directly at (800) CARDBOARD."

// View renders a form back to the client. For a full page, status is
// the response code; htmx snippets are always written with 200 so the
// swap happens.
type View func(w http.ResponseWriter, r *http.Request, status int, f formutil.Form)

// Submission describes one lead form POST.
type Submission struct {
	Kind     leadform.Kind
	Origin   string // page the form sits on
	Redirect string // Post/Redirect/Get target after success
	Run      func(ctx context.Context, v url.Values) leadform.Outcome
	View     View
}

// IsHTMX reports whether the request came from htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// Handle runs a submission through the rate limiter and the controller,
// then answers the way the form's outcome requires:
//   - invalid: the form again with inline errors (422)
//   - relay failure: the form again with its values and an error banner
//   - success: a flash banner and a 303 to s.Redirect, or for htmx an
//     empty form carrying the success banner
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request, s Submission) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	key := string(s.Kind) + "|" + ratelimit.ClientIP(r)
	if h.Limiter != nil {
		allowed := h.Limiter.Allow(key)
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(h.Limiter.Limit()))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(h.Limiter.Remaining(key)))
		if !allowed {
			h.rateLimited(w, r, s, key)
			return
		}
	}

	out := s.Run(r.Context(), r.PostForm)
	h.Metrics.Lead(string(s.Kind), string(out.Result), out.Latency)
	now := h.Leads.Now()

	switch out.Result {
	case leadform.ResultInvalid:
		s.View(w, r, http.StatusUnprocessableEntity, formutil.FromValues(s.Kind, s.Origin, r.PostForm, out.Errors))

	case leadform.ResultFailed:
		f := formutil.FromValues(s.Kind, s.Origin, r.PostForm, nil)
		f.SetBanner(viewdata.BannerFromStatus(s.Kind, out.Status, now))
		s.View(w, r, http.StatusOK, f)

	default: // sent or spam; the two are indistinguishable to the client
		if IsHTMX(r) {
			f := formutil.New(s.Kind, s.Origin)
			f.SetBanner(viewdata.BannerFromStatus(s.Kind, out.Status, now))
			s.View(w, r, http.StatusOK, f)
			return
		}
		b := flash.Banner{Kind: flash.KindSuccess, Title: s.Kind.SuccessTitle(), Message: out.Status.Message, SetAt: out.Status.SettledAt}
		if err := h.Flash.Set(w, r, b); err != nil {
			h.Log.Warn("flash set failed", zap.Error(err), zap.String("submission_id", out.SubmissionID))
		}
		http.Redirect(w, r, s.Redirect, http.StatusSeeOther)
	}
}

func (h *Handler) rateLimited(w http.ResponseWriter, r *http.Request, s Submission, key string) {
	h.Metrics.RateLimited(string(s.Kind))
	h.Log.Info("lead form rate limited", zap.String("form", string(s.Kind)), zap.String("client", ratelimit.ClientIP(r)))
	secs := int(math.Ceil(h.Limiter.RetryAfter(key).Seconds()))
	if secs > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}
	f := formutil.FromValues(s.Kind, s.Origin, r.PostForm, nil)
	f.SetBanner(&viewdata.Banner{
		Title:     s.Kind.ErrorTitle(),
		Message:   RateLimitedMessage,
		HideAfter: leadform.DisplayWindow.Milliseconds(),
	})
	s.View(w, r, http.StatusTooManyRequests, f)
}
