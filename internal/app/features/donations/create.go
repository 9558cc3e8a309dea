// internal/app/features/donations/create.go
package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/dalemusser/fundhub/internal/app/system/inputval"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/sanitize"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/dalemusser/fundhub/internal/app/system/txn"
	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	CampaignID    string  `json:"campaignId" validate:"required,len=24,hexadecimal"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Message       string  `json:"message" validate:"max=250"`
	PaymentMethod string  `json:"paymentMethod" validate:"omitempty,oneof=Card UPI"`
}

// Create handles POST /api/donations.
//
// The donation is written with status Completed (there is no payment
// gateway in front of this service) and the campaign's collected amount is
// incremented in the same transaction when the deployment supports one.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	donorID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		respond.Unauthorized(w)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		respond.BadRequest(w, inputval.Message(err))
		return
	}

	campaignID, err := primitive.ObjectIDFromHex(req.CampaignID)
	if err != nil {
		respond.BadRequest(w, "campaignId is not a valid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.campaigns.GetByID(ctx, campaignID); err != nil {
		if errors.Is(err, campaignstore.ErrNotFound) {
			respond.NotFound(w, "Campaign not found")
			return
		}
		h.log.Error("donation create: campaign lookup failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	donation := models.Donation{
		DonorID:       donorID,
		CampaignID:    campaignID,
		Amount:        req.Amount,
		Message:       sanitize.Text(req.Message),
		PaymentMethod: req.PaymentMethod,
		Status:        models.DonationCompleted,
	}

	var created models.Donation
	err = txn.Run(ctx, h.client, h.log, func(ctx context.Context) error {
		var err error
		created, err = h.donations.Create(ctx, donation)
		if err != nil {
			return err
		}
		return h.campaigns.ApplyDonation(ctx, campaignID, req.Amount)
	})
	if err != nil {
		h.log.Error("donation create failed",
			zap.String("donor_id", donorID.Hex()),
			zap.String("campaign_id", campaignID.Hex()),
			zap.Error(err))
		respond.Internal(w)
		return
	}

	respond.Created(w, respond.Payload{"donation": created})
}
