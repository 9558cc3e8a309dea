// internal/app/features/campaigns/get.go
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

// Get handles GET /api/campaigns/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	campaign, err := h.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, campaignstore.ErrNotFound) {
			respond.NotFound(w, "Campaign not found")
			return
		}
		h.log.Error("campaign get failed", zap.String("campaign_id", id.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}

	out := campaignJSON{Campaign: campaign}
	organizers, err := h.users.DisplayByIDs(ctx, []primitive.ObjectID{campaign.OrganizerID})
	if err != nil {
		h.log.Error("campaign get: organizer lookup failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if u, ok := organizers[campaign.OrganizerID]; ok {
		out.Organizer = &u
	}

	respond.OK(w, respond.Payload{"campaign": out})
}
