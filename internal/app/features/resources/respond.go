// internal/app/features/resources/respond.go
package resources

import (
	"encoding/json"
	"net/http"

	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"github.com/dalemusser/resourcehub/internal/app/system/inputval"
	"github.com/dalemusser/resourcehub/internal/domain/models"
)

// resourceResponse wraps a single resource together with any diagnostics
// the normalizer raised while reading it back.
type resourceResponse struct {
	Resource    models.Resource            `json:"resource"`
	Diagnostics []resourcestore.Diagnostic `json:"diagnostics,omitempty"`
}

// listResponse is the body for list/search requests. Resources is never
// null; an empty result serializes as [].
type listResponse struct {
	Resources   []models.Resource          `json:"resources"`
	Diagnostics []resourcestore.Diagnostic `json:"diagnostics,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeNotFound(w http.ResponseWriter) {
	writeMessage(w, http.StatusNotFound, "Resource not found.")
}

// writeValidationErrors reports field-level failures as 422 with one
// message per field, mirroring the form the payload came from.
func writeValidationErrors(w http.ResponseWriter, errs inputval.Errors) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]inputval.Errors{"errors": errs})
}
