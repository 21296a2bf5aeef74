// Package slugify turns free-form names into URL-safe identifiers.
package slugify

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRun  = regexp.MustCompile(`-+`)

	valid = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// Make derives a slug from name: lowercase, trim, strip everything outside
// word characters/whitespace/hyphens, collapse whitespace runs to a single
// hyphen and hyphen runs to one.
func Make(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return s
}

// IsValid reports whether s is already in slug form. The empty string is not
// a valid slug.
func IsValid(s string) bool {
	return valid.MatchString(s)
}
