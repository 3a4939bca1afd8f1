// internal/app/features/resources/routes.go
package resources

import (
	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the resource catalog routes under whatever base path the
// caller chooses (typically "/api/resources" from bootstrap).
//
// Reads are public; anything that mutates the catalog requires an editor
// session.
//
// Example from bootstrap:
//
//	h := resources.NewHandler(db, errLog, logger)
//	r.Mount("/api/resources", resources.Routes(h, sessionMgr))
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// LIST / SEARCH
	r.Get("/", h.HandleList)

	// VIEW
	r.Get("/{id}", h.HandleView)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireEditor)

		// CREATE
		pr.Post("/", h.HandleCreate)

		// UPDATE
		pr.Put("/{id}", h.HandleUpdate)

		// DELETE
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
