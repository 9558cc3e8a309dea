// internal/app/features/campaigns/delete.go
package campaigns

import (
	"context"
	"errors"
	"net/http"

	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Delete handles DELETE /api/campaigns/{id}. Donations referencing the
// campaign stay in the ledger; donor history and leaderboard totals survive
// campaign removal.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	campaign, err := h.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, campaignstore.ErrNotFound) {
			respond.NotFound(w, "Campaign not found")
			return
		}
		h.log.Error("campaign delete: lookup failed", zap.String("campaign_id", id.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}
	if !canManage(r, campaign.OrganizerID) {
		respond.Forbidden(w, "You can only manage your own campaigns")
		return
	}

	if _, err := h.campaigns.Delete(ctx, id); err != nil {
		h.log.Error("campaign delete failed", zap.String("campaign_id", id.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}

	respond.OK(w, respond.Payload{"message": "Campaign deleted successfully"})
}
