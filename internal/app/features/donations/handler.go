// internal/app/features/donations/handler.go
package donations

import (
	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	donationstore "github.com/dalemusser/fundhub/internal/app/store/donations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the donor-facing donation endpoints: create, list own,
// lifetime stats, and delete with campaign rollback.
type Handler struct {
	client    *mongo.Client
	donations *donationstore.Store
	campaigns *campaignstore.Store
	log       *zap.Logger
}

// NewHandler constructs a donations Handler. The client is needed so the
// ledger write and the campaign total update can share a transaction where
// the deployment supports one.
func NewHandler(client *mongo.Client, db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		client:    client,
		donations: donationstore.New(db),
		campaigns: campaignstore.New(db),
		log:       logger,
	}
}
