// internal/app/features/donations/list.go
package donations

import (
	"context"
	"net/http"

	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// List handles GET /api/donations: the caller's donations newest-first,
// each with a summary of its campaign.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	donorID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		respond.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.donations.ListByDonor(ctx, donorID)
	if err != nil {
		h.log.Error("donation list failed", zap.String("donor_id", donorID.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}
	if list == nil {
		list = []models.DonationWithCampaign{}
	}

	respond.OK(w, respond.Payload{
		"message": "User donations retrieved successfully",
		"data":    list,
	})
}
