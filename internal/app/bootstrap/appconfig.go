// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is where everything specific to ResourceHub lives: the
// MongoDB connection, the editor session, and the Gemini inference
// client.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: resourcehub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Editor access configuration. EditorKeyHash is a bcrypt hash of the
	// shared editor key; when blank, every mutating endpoint returns 401.
	EditorKeyHash string

	// Gemini metadata inference configuration
	GeminiAPIKey string // API key for the Gemini client (blank disables inference)
	GeminiModel  string // Model name used for metadata inference
}
