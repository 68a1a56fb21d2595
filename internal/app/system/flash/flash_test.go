package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/system/flash"
)

const testKey = "test-flash-key-0123456789abcdefghijklmnop"

func newStore(t *testing.T) *flash.Store {
	t.Helper()
	s, err := flash.New(testKey, "test-flash", false, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew_EmptyKey(t *testing.T) {
	if _, err := flash.New("", "x", false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestSetThenPop(t *testing.T) {
	s := newStore(t)
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	want := flash.Banner{Kind: flash.KindSuccess, Title: "Message Sent!", Message: "Thanks", SetAt: at}
	if err := s.Set(rec, req, want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Set wrote no cookie")
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	got, ok := s.Pop(rec2, next)
	if !ok {
		t.Fatal("Pop found no banner")
	}
	if got.Kind != want.Kind || got.Title != want.Title || got.Message != want.Message {
		t.Errorf("Pop = %+v, want %+v", got, want)
	}
	if !got.SetAt.Equal(at) {
		t.Errorf("SetAt = %v, want %v", got.SetAt, at)
	}
	if !got.IsSuccess() {
		t.Error("IsSuccess = false")
	}

	cleared := false
	for _, c := range rec2.Result().Cookies() {
		if c.Name == "test-flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Pop did not expire the cookie")
	}
}

func TestPop_NoCookie(t *testing.T) {
	s := newStore(t)
	if _, ok := s.Pop(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Error("Pop on a fresh request returned a banner")
	}
}

func TestPop_TamperedCookie(t *testing.T) {
	s := newStore(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "test-flash", Value: "garbage"})
	if _, ok := s.Pop(httptest.NewRecorder(), req); ok {
		t.Error("Pop accepted a tampered cookie")
	}
}

func TestMiddleware(t *testing.T) {
	s := newStore(t)

	rec := httptest.NewRecorder()
	if err := s.Set(rec, httptest.NewRequest(http.MethodPost, "/quote", nil), flash.Banner{Kind: flash.KindError, Title: "Submission Error"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got flash.Banner
	var seen bool
	h := s.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, seen = flash.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !seen || got.Kind != flash.KindError || got.Title != "Submission Error" {
		t.Errorf("FromContext = %+v, %v", got, seen)
	}

	seen = false
	plain := httptest.NewRecorder()
	h.ServeHTTP(plain, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen {
		t.Error("banner present without a cookie")
	}
	if len(plain.Result().Cookies()) != 0 {
		t.Error("middleware wrote a cookie for a request without one")
	}
}
