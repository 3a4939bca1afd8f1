// internal/app/features/resources/update.go
package resources

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleUpdate serves PUT /api/resources/{id}.
//
// The record is replaced wholesale with the validated payload; the
// catalog timestamp is refreshed by the store. 404 when the resource
// does not exist, 422 on a failing payload.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w)
		return
	}

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

	updated, diags, found, err := h.Store.Update(ctx, id, draft)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update resource failed", err, "A database error occurred.")
		return
	}
	if !found {
		writeNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, resourceResponse{
		Resource:    updated,
		Diagnostics: diags,
	})
}
