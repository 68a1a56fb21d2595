// internal/app/system/slug/slug.go
//
// Package slug converts display names to the path segments used in URLs.
//
// A slug is the name lower-cased with every run of whitespace replaced by a
// single hyphen. Punctuation and diacritics pass through untouched, so
// "St. Louis" becomes "st.-louis".
package slug

import (
	"strings"
	"unicode"
)

// Make returns the slug for name.
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Matches reports whether name slugs to s.
func Matches(name, s string) bool {
	return Make(name) == s
}
