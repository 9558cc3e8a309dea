package campaignstore

import (
	"errors"
	"testing"

	"github.com/dalemusser/fundhub/internal/domain/models"
	"github.com/dalemusser/fundhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApplyDonation_IncrementsTotal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	organizer := fx.CreateOrganizer(ctx, "org")
	campaign := fx.CreateCampaign(ctx, organizer.ID, "School Fund", 1000)

	store := New(db)

	if err := store.ApplyDonation(ctx, campaign.ID, 30); err != nil {
		t.Fatalf("ApplyDonation failed: %v", err)
	}
	if err := store.ApplyDonation(ctx, campaign.ID, 20); err != nil {
		t.Fatalf("ApplyDonation failed: %v", err)
	}

	got, err := store.GetByID(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CollectedAmount != 50 {
		t.Errorf("expected collected_amount 50, got %v", got.CollectedAmount)
	}
}

func TestApplyDonation_MissingCampaign(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	err := store.ApplyDonation(ctx, primitive.NewObjectID(), 10)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReverseDonation_Subtracts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	organizer := fx.CreateOrganizer(ctx, "org")
	campaign := fx.CreateCampaign(ctx, organizer.ID, "School Fund", 1000)

	store := New(db)
	if err := store.ApplyDonation(ctx, campaign.ID, 100); err != nil {
		t.Fatalf("ApplyDonation failed: %v", err)
	}
	if err := store.ReverseDonation(ctx, campaign.ID, 40); err != nil {
		t.Fatalf("ReverseDonation failed: %v", err)
	}

	got, err := store.GetByID(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CollectedAmount != 60 {
		t.Errorf("expected collected_amount 60, got %v", got.CollectedAmount)
	}
}

func TestReverseDonation_ClampsAtZero(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	organizer := fx.CreateOrganizer(ctx, "org")
	campaign := fx.CreateCampaign(ctx, organizer.ID, "School Fund", 1000)

	store := New(db)
	if err := store.ApplyDonation(ctx, campaign.ID, 10); err != nil {
		t.Fatalf("ApplyDonation failed: %v", err)
	}
	// Reverse more than was ever applied; the total must clamp, not go
	// negative.
	if err := store.ReverseDonation(ctx, campaign.ID, 25); err != nil {
		t.Fatalf("ReverseDonation failed: %v", err)
	}

	got, err := store.GetByID(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CollectedAmount != 0 {
		t.Errorf("expected collected_amount clamped to 0, got %v", got.CollectedAmount)
	}
}

func TestCreate_DefaultsPendingWithZeroTotal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	created, err := store.Create(ctx, models.Campaign{
		Title:       "New Campaign",
		OrganizerID: primitive.NewObjectID(),
		GoalAmount:  500,
		Category:    "Health",
		// CollectedAmount deliberately non-zero in the input; Create must
		// ignore it.
		CollectedAmount: 999,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Status != models.CampaignPending {
		t.Errorf("expected status pending, got %q", created.Status)
	}
	if created.CollectedAmount != 0 {
		t.Errorf("expected collected_amount 0, got %v", created.CollectedAmount)
	}
}

func TestCollectedTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	organizer := fx.CreateOrganizer(ctx, "org")
	a := fx.CreateCampaign(ctx, organizer.ID, "A", 100)
	b := fx.CreateCampaign(ctx, organizer.ID, "B", 100)

	store := New(db)
	if err := store.ApplyDonation(ctx, a.ID, 42); err != nil {
		t.Fatalf("ApplyDonation failed: %v", err)
	}

	totals, err := store.CollectedTotals(ctx)
	if err != nil {
		t.Fatalf("CollectedTotals failed: %v", err)
	}
	if totals[a.ID] != 42 {
		t.Errorf("expected 42 for campaign A, got %v", totals[a.ID])
	}
	if totals[b.ID] != 0 {
		t.Errorf("expected 0 for campaign B, got %v", totals[b.ID])
	}
}
