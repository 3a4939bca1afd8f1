package errors_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	"go.uber.org/zap"
)

func TestLogServerError_WritesJSONWithCorrelationID(t *testing.T) {
	errLog := uierrors.NewErrorLogger(zap.NewNop())

	req := httptest.NewRequest("GET", "/api/resources", nil)
	rec := httptest.NewRecorder()

	errLog.LogServerError(rec, req, "find resources failed", errors.New("boom"), "A database error occurred.")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var body struct {
		Message       string `json:"message"`
		CorrelationID string `json:"correlationId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Message != "A database error occurred." {
		t.Errorf("message: got %q", body.Message)
	}
	if body.CorrelationID == "" {
		t.Error("expected a correlation ID")
	}
	// The raw error must never reach the client.
	if got := rec.Body.String(); strings.Contains(got, "boom") {
		t.Errorf("response leaked internal error: %s", got)
	}
}
