// internal/app/features/badges/routes.go
package badges

import (
	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the badges subrouter; this will be mounted under
// /api/badges. The leaderboard is public; only my-rank needs a signed-in
// caller.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/top", h.Top)
	r.Get("/leaderboard", h.Leaderboard)
	r.Get("/rank/{userID}", h.UserRank)
	r.With(auth.RequireSignedIn).Get("/my-rank", h.MyRank)

	return r
}
