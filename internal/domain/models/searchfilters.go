package models

// Sort keys accepted by SearchFilters.SortBy.
const (
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
	SortDateAsc  = "date_asc"
	SortDateDesc = "date_desc"
)

// FilterAll is the sentinel meaning "no constraint" for a structured filter.
// Callers may also just leave the field empty (or zero, for month/year).
const FilterAll = "All"

// SearchFilters describes one catalog query. All fields are optional.
//
// Type, Category, and Topic are exact-match (case-sensitive) structured
// filters. FilterMonth and FilterYear match the decomposed month/year parts
// of a resource's manual last-update date. Query is a free-text filter
// applied case-insensitively over name, tags, category, and topic after the
// structured filters and normalization have run.
type SearchFilters struct {
	Query       string
	Type        string
	Category    string
	Topic       string
	FilterMonth int
	FilterYear  int
	SortBy      string // one of the Sort* keys; default SortDateDesc
}

// TypeConstrained reports whether the type filter is active.
func (f SearchFilters) TypeConstrained() bool {
	return f.Type != "" && f.Type != FilterAll
}

// CategoryConstrained reports whether the category filter is active.
func (f SearchFilters) CategoryConstrained() bool {
	return f.Category != "" && f.Category != FilterAll
}

// TopicConstrained reports whether the topic filter is active.
func (f SearchFilters) TopicConstrained() bool {
	return f.Topic != "" && f.Topic != FilterAll
}
