// internal/app/features/badges/rank.go
package badges

import (
	"context"
	"net/http"

	"github.com/dalemusser/fundhub/internal/app/store/queries/donorqueries"
	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/dalemusser/fundhub/internal/app/system/ranking"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/dalemusser/fundhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserRank handles GET /api/badges/rank/{userID}: the global rank of any
// user by id.
func (h *Handler) UserRank(w http.ResponseWriter, r *http.Request) {
	h.rankFor(w, r, chi.URLParam(r, "userID"))
}

// MyRank handles GET /api/badges/my-rank for the signed-in caller.
func (h *Handler) MyRank(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	h.rankFor(w, r, u.ID)
}

// rankFor answers a rank query for one user. A user with no Completed
// donations is a "not a donor yet" success, deliberately distinct from an
// error.
func (h *Handler) rankFor(w http.ResponseWriter, r *http.Request, rawID string) {
	userID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		respond.BadRequest(w, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	totals, err := donorqueries.Totals(ctx, h.db)
	if err != nil {
		h.log.Error("rank: totals aggregation failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	rank, ok := ranking.Rank(totals, userID)
	if !ok {
		respond.OK(w, respond.Payload{
			"isDonor": false,
			"message": "User hasn't donated yet",
		})
		return
	}
	total := totals[rank-1]

	users, err := h.users.DisplayByIDs(ctx, []primitive.ObjectID{userID})
	if err != nil {
		h.log.Error("rank: user lookup failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	display, found := users[userID]
	if !found {
		display = models.UserDisplay{ID: userID, DisplayName: "Unknown"}
	}

	payload := respond.Payload{
		"isDonor":       true,
		"user":          display,
		"totalAmount":   total.TotalAmount,
		"donationCount": total.DonationCount,
		"rank":          rank,
	}
	if badge := ranking.Badge(rank); badge != "" {
		payload["badge"] = badge
	}
	respond.OK(w, payload)
}
