// internal/app/system/normalize/normalize.go
//
// Package normalize cleans raw form values before validation.
package normalize

import "strings"

// Email trims and lower-cases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims and collapses internal whitespace runs to one space. Case is
// preserved.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Text trims surrounding whitespace and normalizes line endings to \n.
func Text(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}

// Choice trims a select value. Choices are matched exactly, so case is kept.
func Choice(s string) string {
	return strings.TrimSpace(s)
}

// Checkbox maps the HTML checkbox convention to "true" or "false".
func Checkbox(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return "true"
	}
	return "false"
}

// Origin keeps a same-site path for post-submit redirects. Anything that
// is not a plain absolute path becomes fallback.
func Origin(s, fallback string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") || strings.ContainsAny(s, "\\\r\n") {
		return fallback
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	return s
}
