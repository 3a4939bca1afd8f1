// internal/app/features/resources/view.go
package resources

import (
	"context"
	"net/http"

	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleView serves GET /api/resources/{id}.
//
// A malformed ID gets the same 404 as an unknown one; the distinction is
// of no use to the caller.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, diags, found, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "fetch resource failed", err, "A database error occurred.")
		return
	}
	if !found {
		writeNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, resourceResponse{
		Resource:    res,
		Diagnostics: diags,
	})
}
