// Package inputval collects form-level validation helpers.
//
// Validation failures are reported as field → message maps so the API can
// hand them straight back to the form that produced them. Helpers here are
// pure checks; composing them into per-payload validation lives with the
// feature that owns the payload.
package inputval

import (
	"strings"
	"unicode/utf8"

	"github.com/dalemusser/waffle/pantry/urlutil"
)

// Errors maps a field name to a human-readable validation message.
// An empty map means the input passed.
type Errors map[string]string

// Add records a message for field unless one is already present; the first
// failure per field is the one shown to the user.
func (e Errors) Add(field, msg string) {
	if _, dup := e[field]; !dup {
		e[field] = msg
	}
}

// Ok reports whether no validation failures were recorded.
func (e Errors) Ok() bool { return len(e) == 0 }

// NonEmpty reports whether s contains anything besides whitespace.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinRunes reports whether the trimmed value of s has at least n runes.
func MinRunes(s string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
}

// IsValidURL reports whether s is an absolute http(s) URL.
func IsValidURL(s string) bool {
	return urlutil.IsValidAbsHTTPURL(s)
}
