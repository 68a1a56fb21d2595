package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
)

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewFormRequest creates a form-encoded POST request.
func NewFormRequest(target string, v url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(v.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// HTMX marks a request as coming from htmx.
func HTMX(r *http.Request) *http.Request {
	r.Header.Set("HX-Request", "true")
	return r
}

// RenderCall is one template a handler asked to render.
type RenderCall struct {
	Name    string
	Data    any
	Snippet bool
}

// RenderSpy records render calls instead of executing templates. It
// writes the template name to the response so status codes and headers
// behave as they would with the real engine.
type RenderSpy struct {
	mu    sync.Mutex
	Calls []RenderCall
}

func (s *RenderSpy) Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	s.record(RenderCall{Name: name, Data: data})
	_, _ = w.Write([]byte(name))
}

func (s *RenderSpy) Snippet(w http.ResponseWriter, name string, data any) {
	s.record(RenderCall{Name: name, Data: data, Snippet: true})
	_, _ = w.Write([]byte(name))
}

func (s *RenderSpy) record(c RenderCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, c)
}

// Last returns the most recent call. It panics when nothing was rendered,
// which fails the test with a clear trace.
func (s *RenderSpy) Last() RenderCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Calls) == 0 {
		panic("testutil: nothing rendered")
	}
	return s.Calls[len(s.Calls)-1]
}

// Names lists rendered template names in call order.
func (s *RenderSpy) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Calls))
	for i, c := range s.Calls {
		out[i] = c.Name
	}
	return out
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
