// internal/app/features/serviceareas/templates.go
package serviceareas

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "serviceareas",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
