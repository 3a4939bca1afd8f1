// internal/app/store/resources/search.go
package resourcestore

import (
	"context"
	"strings"

	"github.com/dalemusser/resourcehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Search runs one catalog query: structured filters and ordering execute in
// Mongo (where indexes can serve them), each hit is normalized, and the
// free-text filter runs last over the normalized records. The ordering
// matters: text matching must see fully defaulted fields, so a record with
// a missing category still matches an "Uncategorized" search.
//
// Search never fails. Infrastructure errors are logged and yield an empty
// result; the browsing surface stays up through transient store trouble and
// the user retries manually if they care.
func (s *Store) Search(ctx context.Context, f models.SearchFilters) ([]models.Resource, []Diagnostic) {
	opts := options.Find().SetSort(sortSpec(f.SortBy))

	cur, err := s.c.Find(ctx, buildFilter(f), opts)
	if err != nil {
		s.log.Error("resource search failed", zap.Error(err))
		return []models.Resource{}, nil
	}
	defer cur.Close(ctx)

	var rawDocs []RawRecord
	if err := cur.All(ctx, &rawDocs); err != nil {
		s.log.Error("resource search decode failed", zap.Error(err))
		return []models.Resource{}, nil
	}

	out := make([]models.Resource, 0, len(rawDocs))
	var diags []Diagnostic
	for _, raw := range rawDocs {
		id, _ := raw["_id"].(primitive.ObjectID)
		r, ds := Normalize(id, raw)
		diags = append(diags, ds...)
		if f.Query == "" || matchesQuery(r, f.Query) {
			out = append(out, r)
		}
	}
	return out, diags
}

// buildFilter translates the structured (non-text) filters into conjunctive
// Mongo equality constraints. Structured matching is case-sensitive; only
// the free-text pass folds case.
func buildFilter(f models.SearchFilters) bson.M {
	filter := bson.M{}
	if f.TypeConstrained() {
		filter["type"] = f.Type
	}
	if f.CategoryConstrained() {
		filter["category"] = f.Category
	}
	if f.TopicConstrained() {
		filter["topic"] = f.Topic
	}
	if f.FilterYear != 0 {
		filter["manualLastUpdateYear"] = f.FilterYear
	}
	if f.FilterMonth != 0 {
		filter["manualLastUpdateMonth"] = f.FilterMonth
	}
	return filter
}

// sortSpec maps a sort key to a Mongo sort document. _id ascending breaks
// ties on the primary key, which keeps page order stable for equal names
// or timestamps.
func sortSpec(sortBy string) bson.D {
	switch sortBy {
	case models.SortNameAsc:
		return bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}
	case models.SortNameDesc:
		return bson.D{{Key: "name", Value: -1}, {Key: "_id", Value: 1}}
	case models.SortDateAsc:
		return bson.D{{Key: "updatedDate", Value: 1}, {Key: "_id", Value: 1}}
	default: // models.SortDateDesc and anything unrecognized
		return bson.D{{Key: "updatedDate", Value: -1}, {Key: "_id", Value: 1}}
	}
}

// matchesQuery reports whether the folded query is a substring of the
// resource's name, any tag, category, or topic.
func matchesQuery(r models.Resource, query string) bool {
	q := text.Fold(query)
	if q == "" {
		return true
	}
	if containsFold(r.Name, q) || containsFold(r.Category, q) || containsFold(r.Topic, q) {
		return true
	}
	for _, tag := range r.Tags {
		if containsFold(tag, q) {
			return true
		}
	}
	return false
}

func containsFold(s, foldedQuery string) bool {
	return strings.Contains(text.Fold(s), foldedQuery)
}
