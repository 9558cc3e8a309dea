// internal/domain/models/campaign.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign statuses. A campaign accepts donations regardless of status;
// only approved campaigns appear in public listings.
const (
	CampaignPending  = "pending"
	CampaignApproved = "approved"
	CampaignRejected = "rejected"
)

// Campaign categories.
var CampaignCategories = []string{"Education", "Health", "Environment", "Community", "Other"}

// Campaign is a fundraising campaign.
//
// CollectedAmount is a running total maintained incrementally from the
// donation ledger. Every write to it goes through the campaign store's
// ApplyDonation/ReverseDonation seam; the reconcile worker repairs any
// drift left by a crash between the ledger write and the total update.
type Campaign struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	OrganizerID     primitive.ObjectID `bson:"organizer_id" json:"organizerId"`
	GoalAmount      float64            `bson:"goal_amount" json:"goalAmount"`
	CollectedAmount float64            `bson:"collected_amount" json:"collectedAmount"`
	Category        string             `bson:"category" json:"category"`
	Status          string             `bson:"status" json:"status"` // pending | approved | rejected
	Deadline        time.Time          `bson:"deadline" json:"deadline"`
	ImageURL        string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// CampaignSummary is the projection of a campaign embedded in a donor's
// donation listing.
type CampaignSummary struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	GoalAmount      float64            `bson:"goal_amount" json:"goalAmount"`
	CollectedAmount float64            `bson:"collected_amount" json:"collectedAmount"`
	Category        string             `bson:"category" json:"category"`
	Status          string             `bson:"status" json:"status"`
	ImageURL        string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}
