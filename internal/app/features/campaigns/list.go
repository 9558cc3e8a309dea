// internal/app/features/campaigns/list.go
package campaigns

import (
	"context"
	"net/http"

	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// List handles GET /api/campaigns: approved campaigns newest-first, each
// with its organizer's display fields.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	campaigns, err := h.campaigns.ListApproved(ctx)
	if err != nil {
		h.log.Error("campaign list failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	ids := make([]primitive.ObjectID, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.OrganizerID
	}
	organizers, err := h.users.DisplayByIDs(ctx, ids)
	if err != nil {
		h.log.Error("campaign list: organizer lookup failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	out := make([]campaignJSON, len(campaigns))
	for i, c := range campaigns {
		out[i] = campaignJSON{Campaign: c}
		if u, ok := organizers[c.OrganizerID]; ok {
			out[i].Organizer = &u
		}
	}

	respond.OK(w, respond.Payload{"data": out})
}
