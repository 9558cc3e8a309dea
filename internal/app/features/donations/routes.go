// internal/app/features/donations/routes.go
package donations

import (
	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the donations subrouter. Every endpoint requires a
// signed-in donor; this will be mounted under /api/donations.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/my", h.List)
	r.Get("/stats", h.Stats)
	r.Delete("/{id}", h.Delete)

	return r
}
