// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize strips markup from visitor-supplied text before it
// is relayed by email.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripTags removes every tag, and the contents of script and style
// elements, leaving plain text. Entities are decoded so "Tom & Jerry"
// survives unchanged.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}

// IsPlainText reports whether s has nothing that looks like a tag.
func IsPlainText(s string) bool {
	i := strings.IndexByte(s, '<')
	return i < 0 || strings.IndexByte(s[i:], '>') < 0
}

// Text strips tags and trims the result. Plain input is returned as is,
// apart from the trim.
func Text(s string) string {
	if IsPlainText(s) {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(StripTags(s))
}
