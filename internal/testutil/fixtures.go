package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for seeding test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// InsertRawResource inserts an arbitrary document into the resources
// collection and returns its id. Use it to plant malformed or legacy
// shapes that the store's own write path would never produce.
func (f *Fixtures) InsertRawResource(ctx context.Context, doc bson.M) primitive.ObjectID {
	f.t.Helper()

	res, err := f.db.Collection("resources").InsertOne(ctx, doc)
	if err != nil {
		f.t.Fatalf("failed to insert raw resource: %v", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		f.t.Fatalf("unexpected inserted id type %T", res.InsertedID)
	}
	return id
}

// CreateResource inserts a well-formed resource document with the given
// name, category, and topic, and returns its id.
func (f *Fixtures) CreateResource(ctx context.Context, name, category, topic string) primitive.ObjectID {
	f.t.Helper()

	return f.InsertRawResource(ctx, bson.M{
		"name":                   name,
		"relativeUrl":            "",
		"fullUrl":                "https://example.com/" + primitive.NewObjectID().Hex(),
		"tags":                   bson.A{"fixture"},
		"duration":               "1h",
		"type":                   "Article",
		"category":               category,
		"topic":                  topic,
		"updatedDate":            primitive.NewDateTimeFromTime(time.Now().UTC()),
		"manualLastUpdateString": nil,
		"manualLastUpdateMonth":  nil,
		"manualLastUpdateYear":   nil,
	})
}
