// internal/app/store/resources/extract.go
package resourcestore

import (
	"sort"
	"strings"
)

// distinctClean reduces a raw distinct-values result to the sorted,
// duplicate-free set of usable strings. Non-string values and empty or
// whitespace-only strings are dropped silently. Case is significant:
// "Frameworks" and "frameworks" are distinct values and both survive.
func distinctClean(vals []any) []string {
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
