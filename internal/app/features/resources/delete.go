// internal/app/features/resources/delete.go
package resources

import (
	"context"
	"net/http"

	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleDelete serves DELETE /api/resources/{id}.
//
// 204 when a record was removed, 404 when nothing matched; a repeat
// delete of the same ID is therefore a 404, not an error.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete resource failed", err, "Unable to delete resource.")
		return
	}
	if !deleted {
		writeNotFound(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
