// internal/app/features/inference/routes.go
package inference

import (
	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the inference endpoint (typically under "/api/inference").
// Inference spends model quota, so it sits behind the editor gate.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireEditor)
		pr.Post("/", h.HandleInfer)
	})

	return r
}
