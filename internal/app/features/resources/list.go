// internal/app/features/resources/list.go
package resources

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/dalemusser/resourcehub/internal/domain/models"
)

// HandleList serves GET /api/resources.
//
// Query parameters: q (free text), type, category, topic, month, year,
// sortBy. All are optional; "All" on a structured filter means
// unconstrained. A browse with no parameters returns the whole catalog
// newest-first.
//
// The search itself never fails: infrastructure errors are logged by the
// store and surface here as an empty catalog, so the browsing surface
// stays up while the database misbehaves.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	results, diags := h.Store.Search(ctx, filtersFromQuery(r))

	writeJSON(w, http.StatusOK, listResponse{
		Resources:   results,
		Diagnostics: diags,
	})
}

// filtersFromQuery builds SearchFilters from the request's query string.
// Unparseable month/year values are treated as unconstrained rather than
// rejected; the filter UI only ever sends values it got from us.
func filtersFromQuery(r *http.Request) models.SearchFilters {
	q := r.URL.Query()

	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))

	return models.SearchFilters{
		Query:       strings.TrimSpace(q.Get("q")),
		Type:        strings.TrimSpace(q.Get("type")),
		Category:    strings.TrimSpace(q.Get("category")),
		Topic:       strings.TrimSpace(q.Get("topic")),
		FilterMonth: month,
		FilterYear:  year,
		SortBy:      strings.TrimSpace(q.Get("sortBy")),
	}
}
