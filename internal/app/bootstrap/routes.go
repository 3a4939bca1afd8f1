// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/dalemusser/resourcehub/internal/app/features/auth"
	errorsfeature "github.com/dalemusser/resourcehub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/resourcehub/internal/app/features/health"
	inferencefeature "github.com/dalemusser/resourcehub/internal/app/features/inference"
	resourcesfeature "github.com/dalemusser/resourcehub/internal/app/features/resources"
	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// ResourceHub applies the editor session middleware globally and mounts
// the JSON feature routers: health, auth, the resource catalog, filter
// options, and metadata inference.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, appCfg.EditorKeyHash, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads the editor flag into context so any
	// handler can check auth.IsEditor(r).
	r.Use(sessionMgr.LoadSession)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Editor authentication
	authHandler := authfeature.NewHandler(sessionMgr, logger)
	r.Mount("/auth", authfeature.Routes(authHandler))

	// Resource catalog API
	resHandler := resourcesfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/api/resources", resourcesfeature.Routes(resHandler, sessionMgr))
	r.Get("/api/filter-options", resHandler.FilterOptions)

	// Metadata inference (optional; disabled when no API key is set)
	var inferencer inferencefeature.Inferencer
	if appCfg.GeminiAPIKey != "" {
		gem, err := inferencefeature.NewGemini(appCfg.GeminiAPIKey, appCfg.GeminiModel)
		if err != nil {
			logger.Error("gemini client init failed", zap.Error(err))
			return nil, err
		}
		inferencer = gem
	} else {
		logger.Warn("gemini_api_key is blank; metadata inference endpoint will return 503")
	}
	infHandler := inferencefeature.NewHandler(inferencer, errLog, logger)
	r.Mount("/api/inference", inferencefeature.Routes(infHandler, sessionMgr))

	return r, nil
}
