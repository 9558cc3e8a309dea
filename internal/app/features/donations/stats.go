// internal/app/features/donations/stats.go
package donations

import (
	"context"
	"net/http"

	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Stats handles GET /api/donations/stats: the caller's lifetime Completed
// totals. A donor with no donations gets zeros.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	donorID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		respond.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.donations.StatsByDonor(ctx, donorID)
	if err != nil {
		h.log.Error("donation stats failed", zap.String("donor_id", donorID.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}

	respond.OK(w, respond.Payload{
		"message": "Donation stats retrieved successfully",
		"data":    stats,
	})
}
