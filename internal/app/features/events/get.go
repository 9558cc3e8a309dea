// internal/app/features/events/get.go
package events

import (
	"context"
	"errors"
	"net/http"

	eventstore "github.com/dalemusser/fundhub/internal/app/store/events"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Get handles GET /api/events/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid event id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	event, err := h.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventstore.ErrNotFound) {
			respond.NotFound(w, "Event not found")
			return
		}
		h.log.Error("event get failed", zap.String("event_id", id.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}

	out := eventJSON{Event: event}
	organizers, err := h.users.DisplayByIDs(ctx, []primitive.ObjectID{event.OrganizerID})
	if err != nil {
		h.log.Error("event get: organizer lookup failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if u, ok := organizers[event.OrganizerID]; ok {
		out.Organizer = &u
	}

	respond.OK(w, respond.Payload{"event": out})
}
