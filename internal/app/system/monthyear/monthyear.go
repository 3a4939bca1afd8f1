// Package monthyear handles the strict MM/YYYY format used for a resource's
// user-asserted "content last updated" date.
//
// The stored record keeps three representations that must stay consistent:
// the canonical string ("04/2024") plus separate numeric month and year
// fields used for structured filtering. Parse and Format are the only two
// conversions; anything that does not satisfy the pattern is treated as
// absent rather than rejected.
package monthyear

import (
	"fmt"
	"regexp"
)

// pattern is the exact stored shape: zero-padded month 01-12, 4-digit year.
var pattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)

// Valid reports whether s is a well-formed MM/YYYY string.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Parse decomposes a MM/YYYY string into its numeric month and year.
// ok is false for anything that does not match the strict pattern
// (including "1/2024" and "13/2024").
func Parse(s string) (month, year int, ok bool) {
	if !pattern.MatchString(s) {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(s, "%d/%d", &month, &year); err != nil {
		return 0, 0, false
	}
	return month, year, true
}

// Format reconstructs the canonical MM/YYYY string from numeric parts.
// ok is false when the parts cannot produce a valid string (month outside
// 01-12 or a year that is not 4 digits).
func Format(month, year int) (string, bool) {
	if month < 1 || month > 12 || year < 1000 || year > 9999 {
		return "", false
	}
	return fmt.Sprintf("%02d/%04d", month, year), true
}
