// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll is called at startup. Index creation is idempotent; errors are
// aggregated so any problem is visible and startup can fail fast.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureResources(ctx, db); err != nil {
		problems = append(problems, "resources: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureResources covers the two sort orders and every structured filter
// the query engine pushes down to the store.
func ensureResources(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "updatedDate", Value: -1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "topic", Value: 1}}},
		{Keys: bson.D{{Key: "manualLastUpdateYear", Value: 1}, {Key: "manualLastUpdateMonth", Value: 1}}},
	}

	names, err := db.Collection("resources").Indexes().CreateMany(ctx, models)
	if err != nil {
		// Same keys under a different name (or prior options drift) is fine;
		// the index exists and serves the query.
		if strings.Contains(err.Error(), "IndexOptionsConflict") {
			zap.L().Info("resource index already exists with different options")
			return nil
		}
		return err
	}
	zap.L().Info("ensured resource indexes", zap.Strings("indexes", names))
	return nil
}
