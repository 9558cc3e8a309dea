// internal/app/features/donations/delete.go
package donations

import (
	"context"
	"errors"
	"net/http"

	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	donationstore "github.com/dalemusser/fundhub/internal/app/store/donations"
	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/dalemusser/fundhub/internal/app/system/txn"
	"github.com/dalemusser/fundhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Delete handles DELETE /api/donations/{id}.
//
// Only the owning donor can delete a donation. If the donation was
// Completed, its amount is rolled back from the campaign total, clamped at
// zero. Deleting someone else's donation reports not-found, never
// forbidden, so donation ids stay unguessable.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	donorID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		respond.Unauthorized(w)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid donation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	donation, err := h.donations.GetOwned(ctx, id, donorID)
	if err != nil {
		if errors.Is(err, donationstore.ErrNotFound) {
			respond.NotFound(w, "Donation not found")
			return
		}
		h.log.Error("donation delete: lookup failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	err = txn.Run(ctx, h.client, h.log, func(ctx context.Context) error {
		if donation.Status == models.DonationCompleted {
			err := h.campaigns.ReverseDonation(ctx, donation.CampaignID, donation.Amount)
			// The campaign may have been deleted since; the ledger entry
			// still goes away.
			if err != nil && !errors.Is(err, campaignstore.ErrNotFound) {
				return err
			}
		}
		_, err := h.donations.Delete(ctx, donation.ID)
		return err
	})
	if err != nil {
		h.log.Error("donation delete failed",
			zap.String("donation_id", id.Hex()),
			zap.Error(err))
		respond.Internal(w)
		return
	}

	respond.OK(w, respond.Payload{"message": "Donation deleted successfully"})
}
