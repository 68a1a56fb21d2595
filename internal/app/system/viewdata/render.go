// internal/app/system/viewdata/render.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Renderer writes a named template. Handlers take one so tests can
// capture the view model without booting the template engine.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, name string, data any)
	Snippet(w http.ResponseWriter, name string, data any)
}

// Templates renders through the process-wide waffle template engine.
type Templates struct{}

func (Templates) Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

func (Templates) Snippet(w http.ResponseWriter, name string, data any) {
	templates.RenderSnippet(w, name, data)
}
