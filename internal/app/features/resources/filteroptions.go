// internal/app/features/resources/filteroptions.go
package resources

import (
	"context"
	"net/http"

	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"go.uber.org/zap"
)

// filterOptionsResponse carries everything the filter UI needs to build
// its menus. Types is the fixed vocabulary; categories and topics are
// whatever distinct values currently exist in the catalog.
type filterOptionsResponse struct {
	Types      []models.ResourceType `json:"types"`
	Categories []string              `json:"categories"`
	Topics     []string              `json:"topics"`
}

// FilterOptions serves GET /api/filter-options.
//
// Like the search itself, this endpoint degrades instead of failing: a
// lookup error yields empty menus, never a 500.
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	categories, err := h.Store.DistinctCategories(ctx)
	if err != nil {
		h.Log.Error("distinct categories failed", zap.Error(err))
		categories = []string{}
	}

	topics, err := h.Store.DistinctTopics(ctx)
	if err != nil {
		h.Log.Error("distinct topics failed", zap.Error(err))
		topics = []string{}
	}

	writeJSON(w, http.StatusOK, filterOptionsResponse{
		Types:      models.ResourceTypes,
		Categories: categories,
		Topics:     topics,
	})
}
