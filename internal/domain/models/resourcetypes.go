package models

// ResourceType classifies how a catalog entry is consumed.
type ResourceType string

const (
	TypeArticle       ResourceType = "Article"
	TypeVideo         ResourceType = "Video"
	TypeCourse        ResourceType = "Course"
	TypeTool          ResourceType = "Tool"
	TypeDocumentation ResourceType = "Documentation"
)

// ResourceTypes is the closed set of valid types in canonical order.
// The first entry doubles as the fallback when a stored document carries a
// value outside the set.
var ResourceTypes = []ResourceType{
	TypeArticle,
	TypeVideo,
	TypeCourse,
	TypeTool,
	TypeDocumentation,
}

// DefaultResourceType is the coercion target for unrecognized stored types.
func DefaultResourceType() ResourceType { return ResourceTypes[0] }

// ParseResourceType reports whether s names a member of the closed set and
// returns the member when it does. Matching is exact; the stored values are
// written by this application and case drift is a data-quality signal, not
// something to paper over here.
func ParseResourceType(s string) (ResourceType, bool) {
	for _, t := range ResourceTypes {
		if s == string(t) {
			return t, true
		}
	}
	return DefaultResourceType(), false
}
