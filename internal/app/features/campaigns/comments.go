// internal/app/features/campaigns/comments.go
package campaigns

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
	"github.com/dalemusser/fundhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createCommentRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// commentJSON is a comment with its author's display fields attached.
type commentJSON struct {
	models.Comment
	User *models.UserDisplay `json:"user,omitempty"`
}

// CreateComment handles POST /api/campaigns/{id}/comments.
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		respond.Unauthorized(w)
		return
	}

	campaignID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		respond.BadRequest(w, inputval.Message(err))
		return
	}
	text := sanitize.Text(req.Text)
	if text == "" {
		respond.BadRequest(w, "Comment text is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.campaigns.GetByID(ctx, campaignID); err != nil {
		if errors.Is(err, campaignstore.ErrNotFound) {
			respond.NotFound(w, "Campaign not found")
			return
		}
		h.log.Error("comment create: campaign lookup failed",
			zap.String("campaign_id", campaignID.Hex()),
			zap.Error(err))
		respond.Internal(w)
		return
	}

	created, err := h.comments.Create(ctx, models.Comment{
		CampaignID: campaignID,
		UserID:     userID,
		Text:       text,
	})
	if err != nil {
		h.log.Error("comment create failed",
			zap.String("campaign_id", campaignID.Hex()),
			zap.String("user_id", userID.Hex()),
			zap.Error(err))
		respond.Internal(w)
		return
	}

	respond.Created(w, respond.Payload{
		"message": "Comment created successfully",
		"comment": created,
	})
}

// ListComments handles GET /api/campaigns/{id}/comments: the campaign's
// comments newest-first, each with its author's display fields. A campaign
// with no comments (or an unknown id) yields an empty list.
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	campaignID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comments, err := h.comments.ListByCampaign(ctx, campaignID)
	if err != nil {
		h.log.Error("comment list failed", zap.String("campaign_id", campaignID.Hex()), zap.Error(err))
		respond.Internal(w)
		return
	}

	ids := make([]primitive.ObjectID, len(comments))
	for i, c := range comments {
		ids[i] = c.UserID
	}
	authors, err := h.users.DisplayByIDs(ctx, ids)
	if err != nil {
		h.log.Error("comment list: author lookup failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	out := make([]commentJSON, len(comments))
	for i, c := range comments {
		out[i] = commentJSON{Comment: c}
		if u, ok := authors[c.UserID]; ok {
			out[i].User = &u
		} else {
			// Author account deleted since commenting.
			out[i].User = &models.UserDisplay{ID: c.UserID, DisplayName: "Unknown"}
		}
	}

	respond.OK(w, respond.Payload{"data": out})
}
