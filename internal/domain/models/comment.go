// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentMaxLen caps the length of a campaign comment.
const CommentMaxLen = 500

// Comment is a public note a signed-in user leaves on a campaign page.
// Comments are plain text; markup is stripped before storage.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampaignID primitive.ObjectID `bson:"campaign_id" json:"campaignId"`
	UserID     primitive.ObjectID `bson:"user_id" json:"userId"`
	Text       string             `bson:"text" json:"text"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
