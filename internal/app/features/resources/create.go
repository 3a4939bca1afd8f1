// internal/app/features/resources/create.go
package resources

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
)

// HandleCreate serves POST /api/resources.
//
// The payload is validated and sanitized before anything touches the
// database; a failing payload gets 422 with per-field messages. On
// success the stored record is read back through the normalizer and
// returned as 201, so the caller sees exactly what later reads will see.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in ResourceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	draft, errs := in.validate()
	if !errs.Ok() {
		writeValidationErrors(w, errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, diags, err := h.Store.Create(ctx, draft)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create resource failed", err, "A database error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, resourceResponse{
		Resource:    created,
		Diagnostics: diags,
	})
}
