package project

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugHyphens  = regexp.MustCompile(`[\s]+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify derives the URL path segment for a display name: lowercase, strip
// everything outside [a-z0-9 -], collapse whitespace runs to single
// hyphens, collapse repeated hyphens, trim. Lossy and deterministic.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
