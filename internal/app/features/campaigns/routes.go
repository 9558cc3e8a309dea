// internal/app/features/campaigns/routes.go
package campaigns

import (
	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the campaigns subrouter; this will be mounted under
// /api/campaigns. Reads are public; campaign writes need an organizer or
// admin, commenting needs any signed-in user.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Get("/{id}/comments", h.ListComments)

	// Any signed-in user may comment, regardless of role.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSignedIn)
		r.Post("/{id}/comments", h.CreateComment)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole("organizer", "admin"))
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
