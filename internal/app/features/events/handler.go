// internal/app/features/events/handler.go
package events

import (
	eventstore "github.com/dalemusser/fundhub/internal/app/store/events"
	userstore "github.com/dalemusser/fundhub/internal/app/store/users"
	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves read access to fundraising events. Event creation,
// editing, and moderation live in the organizer console; only approved
// events are visible here.
type Handler struct {
	events *eventstore.Store
	users  *userstore.Store
	log    *zap.Logger
}

// NewHandler constructs an events Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		events: eventstore.New(db),
		users:  userstore.New(db),
		log:    logger,
	}
}

// eventJSON is an event with its organizer's display fields attached.
type eventJSON struct {
	models.Event
	Organizer *models.UserDisplay `json:"organizer,omitempty"`
}
