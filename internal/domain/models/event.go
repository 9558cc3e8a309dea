// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event statuses follow the same moderation states as campaigns.
const (
	EventPending  = "pending"
	EventApproved = "approved"
	EventRejected = "rejected"
)

// Event is a time-bounded fundraising drive run by an organization, such
// as a charity gala or marathon. Unlike campaigns, events never appear in
// the donation ledger; their totals are maintained by the organizer
// console that also owns event creation and moderation. This API serves
// reads only.
type Event struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Organization    string             `bson:"organization" json:"organization"`
	Description     string             `bson:"description" json:"description"`
	OrganizerID     primitive.ObjectID `bson:"organizer_id" json:"organizerId"`
	GoalAmount      float64            `bson:"goal_amount" json:"goalAmount"`
	CollectedAmount float64            `bson:"collected_amount" json:"collectedAmount"`
	StartDate       time.Time          `bson:"start_date" json:"startDate"`
	EndDate         time.Time          `bson:"end_date" json:"endDate"`
	Status          string             `bson:"status" json:"status"` // pending | approved | rejected
	ImageURL        string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
