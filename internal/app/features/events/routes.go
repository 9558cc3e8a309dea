// internal/app/features/events/routes.go
package events

import (
	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the events subrouter; this will be mounted under
// /api/events. Event listings are for signed-in users only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	return r
}
