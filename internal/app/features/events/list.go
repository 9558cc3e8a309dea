// internal/app/features/events/list.go
package events

import (
	"context"
	"net/http"

	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// List handles GET /api/events: approved events soonest-first, each with
// its organizer's display fields.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.events.ListApproved(ctx)
	if err != nil {
		h.log.Error("event list failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	ids := make([]primitive.ObjectID, len(events))
	for i, e := range events {
		ids[i] = e.OrganizerID
	}
	organizers, err := h.users.DisplayByIDs(ctx, ids)
	if err != nil {
		h.log.Error("event list: organizer lookup failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	out := make([]eventJSON, len(events))
	for i, e := range events {
		out[i] = eventJSON{Event: e}
		if u, ok := organizers[e.OrganizerID]; ok {
			out[i].Organizer = &u
		}
	}

	respond.OK(w, respond.Payload{"data": out})
}
