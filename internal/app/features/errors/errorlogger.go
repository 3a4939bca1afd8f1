// internal/app/features/errors/errorlogger.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side failures and writes the caller-facing
// JSON error response. Each failure gets a correlation ID so a support
// report quoting the ID can be matched to the full log entry.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// serverErrorResponse is the body written for 500s.
type serverErrorResponse struct {
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
}

// LogServerError logs the underlying error with full detail and writes a
// 500 response carrying only userMsg and the correlation ID. The raw
// error never reaches the client.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	correlationID := uuid.NewString()

	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("correlation_id", correlationID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(serverErrorResponse{
		Message:       userMsg,
		CorrelationID: correlationID,
	})
}
