// internal/app/features/badges/handler.go
package badges

import (
	"context"

	"github.com/dalemusser/fundhub/internal/app/store/queries/donorqueries"
	userstore "github.com/dalemusser/fundhub/internal/app/store/users"
	"github.com/dalemusser/fundhub/internal/app/system/ranking"
	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the leaderboard and rank endpoints. Rank and badge are
// derived per request from the donation ledger; nothing here is persisted.
type Handler struct {
	db    *mongo.Database
	users *userstore.Store
	log   *zap.Logger
}

// NewHandler constructs a badges Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		db:    db,
		users: userstore.New(db),
		log:   logger,
	}
}

// entry is one leaderboard row on the wire.
type entry struct {
	User          models.UserDisplay `json:"user"`
	TotalAmount   float64            `json:"totalAmount"`
	DonationCount int64              `json:"donationCount"`
	Rank          int                `json:"rank"`
	Badge         string             `json:"badge,omitempty"`
}

// enrich attaches user display fields and global rank/badge to a slice of
// totals whose first element holds global rank firstRank. Donors whose
// user record has been removed still rank, with a placeholder name.
func (h *Handler) enrich(ctx context.Context, totals []donorqueries.DonorTotal, firstRank int) ([]entry, error) {
	ids := make([]primitive.ObjectID, len(totals))
	for i, t := range totals {
		ids[i] = t.DonorID
	}

	users, err := h.users.DisplayByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]entry, len(totals))
	for i, t := range totals {
		u, ok := users[t.DonorID]
		if !ok {
			u = models.UserDisplay{ID: t.DonorID, DisplayName: "Unknown"}
		}
		rank := firstRank + i
		entries[i] = entry{
			User:          u,
			TotalAmount:   t.TotalAmount,
			DonationCount: t.DonationCount,
			Rank:          rank,
			Badge:         ranking.Badge(rank),
		}
	}
	return entries, nil
}
