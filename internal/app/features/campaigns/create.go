// internal/app/features/campaigns/create.go
package campaigns

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/dalemusser/fundhub/internal/app/system/inputval"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/sanitize"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Title       string    `json:"title" validate:"required,max=100"`
	Description string    `json:"description" validate:"required,max=1000"`
	GoalAmount  float64   `json:"goalAmount" validate:"required,gt=0"`
	Category    string    `json:"category" validate:"required,oneof=Education Health Environment Community Other"`
	Deadline    time.Time `json:"deadline" validate:"required"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url"`
}

// Create handles POST /api/campaigns. New campaigns start as pending and
// stay out of the public listing until the moderation service approves them.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	organizerID, err := primitive.ObjectIDFromHex(u.ID)
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
	if !req.Deadline.After(time.Now()) {
		respond.BadRequest(w, "deadline must be in the future")
		return
	}

	campaign := models.Campaign{
		Title:       sanitize.Text(req.Title),
		Description: sanitize.Text(req.Description),
		OrganizerID: organizerID,
		GoalAmount:  req.GoalAmount,
		Category:    req.Category,
		Status:      models.CampaignPending,
		Deadline:    req.Deadline.UTC(),
		ImageURL:    req.ImageURL,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.campaigns.Create(ctx, campaign)
	if err != nil {
		h.log.Error("campaign create failed",
			zap.String("organizer_id", organizerID.Hex()),
			zap.Error(err))
		respond.Internal(w)
		return
	}

	respond.Created(w, respond.Payload{
		"message":  "Campaign created successfully and is pending approval",
		"campaign": created,
	})
}
