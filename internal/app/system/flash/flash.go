// internal/app/system/flash/flash.go
package flash

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Kind is the banner style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Banner is the one-shot message shown after a Post/Redirect/Get.
type Banner struct {
	Kind    Kind
	Title   string
	Message string
	SetAt   time.Time
}

// IsSuccess is a template helper.
func (b Banner) IsSuccess() bool { return b.Kind == KindSuccess }

// Store keeps at most one pending banner in a signed cookie.
type Store struct {
	cookies *sessions.CookieStore
	name    string
	log     *zap.Logger
}

const (
	keyKind    = "kind"
	keyTitle   = "title"
	keyMessage = "message"
	keySetAt   = "set_at"
)

// New builds a Store that signs its cookie with key. Secure marks the
// cookie Secure; use it whenever the site is served over https.
func New(key, name string, secure bool, logger *zap.Logger) (*Store, error) {
	if key == "" {
		return nil, fmt.Errorf("flash: session key is empty")
	}
	if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended", zap.Int("length", len(key)))
	}

	cs := sessions.NewCookieStore([]byte(key))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs, name: name, log: logger}, nil
}

// Name is the cookie name.
func (s *Store) Name() string { return s.name }

// Set stores b for the next page load.
func (s *Store) Set(w http.ResponseWriter, r *http.Request, b Banner) error {
	sess := s.session(r)
	sess.Values[keyKind] = string(b.Kind)
	sess.Values[keyTitle] = b.Title
	sess.Values[keyMessage] = b.Message
	sess.Values[keySetAt] = strconv.FormatInt(b.SetAt.UnixMilli(), 10)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("flash: save: %w", err)
	}
	return nil
}

// Pop returns the pending banner, if any, and clears it.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) (Banner, bool) {
	sess := s.session(r)
	kind, _ := sess.Values[keyKind].(string)
	if kind == "" {
		return Banner{}, false
	}

	b := Banner{
		Kind:    Kind(kind),
		Title:   str(sess, keyTitle),
		Message: str(sess, keyMessage),
	}
	if ms, err := strconv.ParseInt(str(sess, keySetAt), 10, 64); err == nil {
		b.SetAt = time.UnixMilli(ms)
	}

	for _, k := range []string{keyKind, keyTitle, keyMessage, keySetAt} {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		s.log.Warn("flash: clear failed", zap.Error(err))
	}
	return b, true
}

// session returns the flash session, or a fresh one when the cookie does
// not decode (rotated key, tampering).
func (s *Store) session(r *http.Request) *sessions.Session {
	sess, err := s.cookies.Get(r, s.name)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			s.log.Debug("flash cookie invalid, using fresh session", zap.Error(err))
		} else {
			s.log.Warn("flash store error, using fresh session", zap.Error(err))
		}
	}
	return sess
}

func str(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

type ctxKey struct{}

// WithBanner returns ctx carrying b.
func WithBanner(ctx context.Context, b Banner) context.Context {
	return context.WithValue(ctx, ctxKey{}, b)
}

// FromContext returns the banner Middleware popped for this request.
func FromContext(ctx context.Context) (Banner, bool) {
	b, ok := ctx.Value(ctxKey{}).(Banner)
	return b, ok
}

// Middleware pops a pending banner into the request context so page
// handlers can render it. Requests without the cookie pass straight through.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(s.name); err == nil {
			if b, ok := s.Pop(w, r); ok {
				r = r.WithContext(WithBanner(r.Context(), b))
			}
		}
		next.ServeHTTP(w, r)
	})
}
