// Package htmlsanitize strips markup from user-supplied catalog text.
//
// Resource names, categories, topics, and tags are plain text; anything
// that looks like HTML in them is either a paste accident or an injection
// attempt, and both get the same treatment.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML elements and attributes from s and returns the
// remaining text with entities decoded and surrounding whitespace trimmed.
// "C++ & Go" passes through unchanged; "<script>x</script>Go" becomes "Go".
func Strip(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
