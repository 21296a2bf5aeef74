// Package validate holds the field-level checks shared by the HTTP handlers
// (authoritative) and the console forms (pre-submit). Both sides consume the
// same entity rule functions so their coverage cannot drift.
package validate

import (
	"regexp"
	"strings"
)

// Errors maps a field name to a human-readable message, mirroring the wire
// shape of a 422 response body ({"errors": {field: message}}).
type Errors map[string]string

func (e Errors) Any() bool { return len(e) > 0 }

// Merge copies all entries of other into e, overwriting on conflict.
func (e Errors) Merge(other Errors) {
	for k, v := range other {
		e[k] = v
	}
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Required reports whether s has any non-whitespace content.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// OneOf reports whether v is a member of the allowed set.
func OneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// HexColor reports whether v looks like "#RRGGBB".
func HexColor(v string) bool {
	return hexColor.MatchString(v)
}
