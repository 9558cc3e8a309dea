// internal/app/features/campaigns/update.go
package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/dalemusser/fundhub/internal/app/system/inputval"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/sanitize"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// updateRequest carries a partial edit; nil fields are left unchanged.
type updateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	GoalAmount  *float64   `json:"goalAmount" validate:"omitempty,gt=0"`
	Category    *string    `json:"category" validate:"omitempty,oneof=Education Health Environment Community Other"`
	Deadline    *time.Time `json:"deadline"`
	ImageURL    *string    `json:"imageUrl" validate:"omitempty,url"`
}

// Update handles PATCH /api/campaigns/{id}. Only the owning organizer or an
// admin may edit; status and collected_amount are never editable here.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		respond.BadRequest(w, inputval.Message(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	campaign, err := h.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, campaignstore.ErrNotFound) {
			respond.NotFound(w, "Campaign not found")
			return
		}
		h.log.Error("campaign update: lookup failed", zap.String("campaign_id", id.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}
	if !canManage(r, campaign.OrganizerID) {
		respond.Forbidden(w, "You can only manage your own campaigns")
		return
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = sanitize.Text(*req.Title)
	}
	if req.Description != nil {
		set["description"] = sanitize.Text(*req.Description)
	}
	if req.GoalAmount != nil {
		set["goal_amount"] = *req.GoalAmount
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Deadline != nil {
		if !req.Deadline.After(time.Now()) {
			respond.BadRequest(w, "deadline must be in the future")
			return
		}
		set["deadline"] = req.Deadline.UTC()
	}
	if req.ImageURL != nil {
		set["image_url"] = *req.ImageURL
	}
	if len(set) == 0 {
		respond.BadRequest(w, "nothing to update")
		return
	}

	if err := h.campaigns.UpdateInfo(ctx, id, set); err != nil {
		if errors.Is(err, campaignstore.ErrNotFound) {
			respond.NotFound(w, "Campaign not found")
			return
		}
		h.log.Error("campaign update failed", zap.String("campaign_id", id.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}

	updated, err := h.campaigns.GetByID(ctx, id)
	if err != nil {
		h.log.Error("campaign update: reload failed", zap.String("campaign_id", id.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}

	respond.OK(w, respond.Payload{
		"message":  "Campaign updated successfully",
		"campaign": updated,
	})
}

// canManage reports whether the signed-in caller owns the campaign or is an
// admin.
func canManage(r *http.Request, organizerID primitive.ObjectID) bool {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return false
	}
	if strings.EqualFold(u.Role, "admin") {
		return true
	}
	return u.ID == organizerID.Hex()
}
