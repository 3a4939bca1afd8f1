// internal/app/features/resources/handler.go
package resources

import (
	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the resource catalog API (list/search, view, create,
// update, delete, and the filter-option lookups).
//
// It is constructed once at startup in bootstrap, using the shared
// Mongo database handle and logger.
type Handler struct {
	Store  *resourcestore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a Handler bound to the given Mongo database
// and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  resourcestore.New(db, logger),
		Log:    logger,
		ErrLog: errLog,
	}
}
