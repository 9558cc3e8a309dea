// internal/app/features/campaigns/handler.go
package campaigns

import (
	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	commentstore "github.com/dalemusser/fundhub/internal/app/store/comments"
	userstore "github.com/dalemusser/fundhub/internal/app/store/users"
	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves campaign CRUD and the per-campaign comment thread.
// Approval state changes are owned by the external moderation service;
// campaigns here only start life as pending.
type Handler struct {
	campaigns *campaignstore.Store
	comments  *commentstore.Store
	users     *userstore.Store
	log       *zap.Logger
}

// NewHandler constructs a campaigns Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		campaigns: campaignstore.New(db),
		comments:  commentstore.New(db),
		users:     userstore.New(db),
		log:       logger,
	}
}

// campaignJSON is a campaign with its organizer's display fields attached.
type campaignJSON struct {
	models.Campaign
	Organizer *models.UserDisplay `json:"organizer,omitempty"`
}
