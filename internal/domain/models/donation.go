// internal/domain/models/donation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation statuses. Only Completed donations count toward a campaign's
// collected amount and the donor leaderboard.
const (
	DonationPending   = "Pending"
	DonationCompleted = "Completed"
	DonationFailed    = "Failed"
)

// Payment methods.
const (
	PaymentCard = "Card"
	PaymentUPI  = "UPI"
)

// MessageMaxLen caps the optional support message on a donation.
const MessageMaxLen = 250

// Donation is one ledger entry. The ledger is append/remove-only: entries
// are never updated in place, and removing a Completed entry reverses its
// effect on the campaign total.
type Donation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DonorID       primitive.ObjectID `bson:"donor_id" json:"donorId"`
	CampaignID    primitive.ObjectID `bson:"campaign_id" json:"campaignId"`
	Amount        float64            `bson:"amount" json:"amount"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod"` // Card | UPI
	Status        string             `bson:"status" json:"status"`                // Pending | Completed | Failed

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// DonationWithCampaign is a donation joined with its campaign summary,
// returned by the donor's donation listing.
type DonationWithCampaign struct {
	Donation `bson:",inline"`
	Campaign CampaignSummary `bson:"campaign" json:"campaign"`
}
