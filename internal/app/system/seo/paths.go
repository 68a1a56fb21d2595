// internal/app/system/seo/paths.go
package seo

import (
	"github.com/dalemusser/balesite/internal/app/system/slug"
	"github.com/dalemusser/balesite/internal/domain/models"
)

// Kind of routable page.
const (
	KindStatic = "static"
	KindState  = "state"
	KindCity   = "city"
)

// Entry is one routable page.
type Entry struct {
	Path string
	Kind string
}

// Paths lists every page a crawler can reach: the static pages, then each
// state followed by its cities, in directory order.
func Paths(areas []models.ServiceArea) []Entry {
	out := make([]Entry, 0, len(StaticPages)+len(areas)*4)
	for _, p := range StaticPages {
		out = append(out, Entry{Path: p.Path, Kind: KindStatic})
	}
	for _, a := range areas {
		state := "/" + slug.Make(a.State)
		out = append(out, Entry{Path: state, Kind: KindState})
		for _, c := range a.Cities {
			out = append(out, Entry{Path: state + "/" + slug.Make(c), Kind: KindCity})
		}
	}
	return out
}
