// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// ResourceHub logs a catalog summary so operators can tell at a glance
// whether the service came up against the expected database.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	store := resourcestore.New(deps.MongoDatabase, logger)
	count, err := store.Count(ctx)
	if err != nil {
		// Not fatal: the catalog may simply be empty or the count can
		// fail transiently. The connection itself was already verified.
		logger.Warn("resource count failed during startup", zap.Error(err))
		return nil
	}
	logger.Info("resource catalog ready", zap.Int64("resources", count))
	return nil
}
