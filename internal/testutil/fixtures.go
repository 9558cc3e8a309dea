// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given display name and role.
func (f *Fixtures) CreateUser(ctx context.Context, name, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:          primitive.NewObjectID(),
		DisplayName: name,
		Email:       name + "@test.com",
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateDonor inserts a donor user.
func (f *Fixtures) CreateDonor(ctx context.Context, name string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, models.RoleDonor)
}

// CreateOrganizer inserts an organizer user.
func (f *Fixtures) CreateOrganizer(ctx context.Context, name string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, models.RoleOrganizer)
}

// CreateCampaign inserts an approved campaign owned by the given organizer.
func (f *Fixtures) CreateCampaign(ctx context.Context, organizerID primitive.ObjectID, title string, goal float64) models.Campaign {
	f.t.Helper()

	now := time.Now().UTC()
	campaign := models.Campaign{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "A test campaign",
		OrganizerID: organizerID,
		GoalAmount:  goal,
		Category:    "Education",
		Status:      models.CampaignApproved,
		Deadline:    now.AddDate(0, 1, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("campaigns").InsertOne(ctx, campaign); err != nil {
		f.t.Fatalf("failed to create test campaign: %v", err)
	}
	return campaign
}

// CreateComment inserts a comment on a campaign at the given creation time.
// CreatedAt is explicit so tests can control thread ordering.
func (f *Fixtures) CreateComment(ctx context.Context, userID, campaignID primitive.ObjectID, text string, createdAt time.Time) models.Comment {
	f.t.Helper()

	comment := models.Comment{
		ID:         primitive.NewObjectID(),
		CampaignID: campaignID,
		UserID:     userID,
		Text:       text,
		CreatedAt:  createdAt.UTC(),
	}
	if _, err := f.db.Collection("comments").InsertOne(ctx, comment); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	return comment
}

// CreateEvent inserts an event with the given status, starting a week out.
func (f *Fixtures) CreateEvent(ctx context.Context, organizerID primitive.ObjectID, name, status string) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	event := models.Event{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Organization: "Test Org",
		Description:  "A test event",
		OrganizerID:  organizerID,
		GoalAmount:   10000,
		StartDate:    now.AddDate(0, 0, 7),
		EndDate:      now.AddDate(0, 0, 8),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("events").InsertOne(ctx, event); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateDonation inserts a Completed donation at the given creation time.
// CreatedAt is explicit so tests can control leaderboard tie-breaks.
func (f *Fixtures) CreateDonation(ctx context.Context, donorID, campaignID primitive.ObjectID, amount float64, createdAt time.Time) models.Donation {
	f.t.Helper()

	donation := models.Donation{
		ID:            primitive.NewObjectID(),
		DonorID:       donorID,
		CampaignID:    campaignID,
		Amount:        amount,
		PaymentMethod: models.PaymentUPI,
		Status:        models.DonationCompleted,
		CreatedAt:     createdAt.UTC(),
	}
	if _, err := f.db.Collection("donations").InsertOne(ctx, donation); err != nil {
		f.t.Fatalf("failed to create test donation: %v", err)
	}
	return donation
}

// CreateDonationWithStatus inserts a donation with an explicit status.
func (f *Fixtures) CreateDonationWithStatus(ctx context.Context, donorID, campaignID primitive.ObjectID, amount float64, status string, createdAt time.Time) models.Donation {
	f.t.Helper()

	donation := models.Donation{
		ID:            primitive.NewObjectID(),
		DonorID:       donorID,
		CampaignID:    campaignID,
		Amount:        amount,
		PaymentMethod: models.PaymentUPI,
		Status:        status,
		CreatedAt:     createdAt.UTC(),
	}
	if _, err := f.db.Collection("donations").InsertOne(ctx, donation); err != nil {
		f.t.Fatalf("failed to create test donation: %v", err)
	}
	return donation
}
