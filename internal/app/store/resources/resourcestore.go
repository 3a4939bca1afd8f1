// internal/app/store/resources/resourcestore.go
package resourcestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/resourcehub/internal/app/system/monthyear"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Collection is the Mongo collection holding catalog entries.
const Collection = "resources"

// Store provides catalog access on top of the resources collection.
// All reads flow through Normalize, so callers always receive fully
// defaulted Resources plus any data-quality diagnostics found on the way.
type Store struct {
	c   *mongo.Collection
	log *zap.Logger
}

// New constructs a Store bound to the given database and logger.
func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{c: db.Collection(Collection), log: logger}
}

// Draft is a validated, sanitized create/update payload. Validation happens
// at the API boundary (features/resources); by the time a Draft reaches the
// store its fields are trusted, except ManualLastUpdate which may be empty.
type Draft struct {
	Name             string
	RelativeURL      string
	FullURL          string
	Tags             []string
	Duration         string
	Type             models.ResourceType
	Category         string
	Topic            string
	ManualLastUpdate string // "" or strict MM/YYYY
}

// record is the stored document shape. The manual last-update date is kept
// in three consistent parts: the canonical string for display plus numeric
// month/year for structured equality filters. Absent values are stored as
// explicit nulls, matching the historical records.
type record struct {
	Name                   string       `bson:"name"`
	RelativeURL            string       `bson:"relativeUrl"`
	FullURL                string       `bson:"fullUrl"`
	Tags                   []string     `bson:"tags"`
	Duration               string       `bson:"duration"`
	Type                   string       `bson:"type"`
	Category               string       `bson:"category"`
	Topic                  string       `bson:"topic"`
	UpdatedDate            time.Time    `bson:"updatedDate"`
	ManualLastUpdateString *string      `bson:"manualLastUpdateString"`
	ManualLastUpdateMonth  *int         `bson:"manualLastUpdateMonth"`
	ManualLastUpdateYear   *int         `bson:"manualLastUpdateYear"`
}

func toRecord(d Draft, now time.Time) record {
	rec := record{
		Name:        d.Name,
		RelativeURL: d.RelativeURL,
		FullURL:     d.FullURL,
		Tags:        d.Tags,
		Duration:    d.Duration,
		Type:        string(d.Type),
		Category:    d.Category,
		Topic:       d.Topic,
		UpdatedDate: now,
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if month, year, ok := monthyear.Parse(d.ManualLastUpdate); ok {
		s := d.ManualLastUpdate
		rec.ManualLastUpdateString = &s
		rec.ManualLastUpdateMonth = &month
		rec.ManualLastUpdateYear = &year
	}
	return rec
}

// Create inserts a new resource and reads the stored document back, so the
// caller sees exactly what a later fetch would return (including the
// store-assigned updatedDate). ID assignment is the store's job; IDs are
// never reused.
func (s *Store) Create(ctx context.Context, d Draft) (models.Resource, []Diagnostic, error) {
	rec := toRecord(d, time.Now().UTC())

	res, err := s.c.InsertOne(ctx, rec)
	if err != nil {
		return models.Resource{}, nil, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Resource{}, nil, errors.New("resourcestore: unexpected inserted id type")
	}
	return s.fetch(ctx, id)
}

// Update overwrites the mutable fields of the resource with the Draft and
// refreshes updatedDate regardless of what changed, then reads the stored
// document back. found is false when no resource has the given id.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, d Draft) (r models.Resource, diags []Diagnostic, found bool, err error) {
	rec := toRecord(d, time.Now().UTC())

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": rec})
	if err != nil {
		return models.Resource{}, nil, false, err
	}
	if res.MatchedCount == 0 {
		return models.Resource{}, nil, false, nil
	}
	r, diags, err = s.fetch(ctx, id)
	return r, diags, err == nil, err
}

// GetByID returns the normalized resource, or found=false when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (r models.Resource, diags []Diagnostic, found bool, err error) {
	r, diags, err = s.fetch(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Resource{}, nil, false, nil
	}
	if err != nil {
		return models.Resource{}, nil, false, err
	}
	return r, diags, true, nil
}

// Delete removes a resource. Deletion is terminal: no tombstones, no
// recovery. Returns false when the id did not exist.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Count returns the number of stored resources.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// fetch reads one document by id and normalizes it.
func (s *Store) fetch(ctx context.Context, id primitive.ObjectID) (models.Resource, []Diagnostic, error) {
	var raw RawRecord
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&raw); err != nil {
		return models.Resource{}, nil, err
	}
	r, diags := Normalize(id, raw)
	return r, diags, nil
}

// DistinctCategories returns the sorted, duplicate-free set of non-empty
// category values across all stored resources, for filter UI population.
func (s *Store) DistinctCategories(ctx context.Context) ([]string, error) {
	return s.distinctStrings(ctx, "category")
}

// DistinctTopics is DistinctCategories for the topic field.
func (s *Store) DistinctTopics(ctx context.Context) ([]string, error) {
	return s.distinctStrings(ctx, "topic")
}

// distinctStrings scans the full record set for field. Values that are
// absent, not strings, or whitespace-only are excluded; that is routine
// filtering, not a data-quality signal, so no diagnostics are emitted.
func (s *Store) distinctStrings(ctx context.Context, field string) ([]string, error) {
	vals, err := s.c.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	return distinctClean(vals), nil
}
