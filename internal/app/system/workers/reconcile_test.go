package workers

import (
	"testing"
	"time"

	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	donationstore "github.com/dalemusser/fundhub/internal/app/store/donations"
	"github.com/dalemusser/fundhub/internal/testutil"
	"go.uber.org/zap"
)

func TestRunOnce_RepairsDriftedTotal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	organizer := fx.CreateOrganizer(ctx, "org")
	drifted := fx.CreateCampaign(ctx, organizer.ID, "Drifted", 1000)
	healthy := fx.CreateCampaign(ctx, organizer.ID, "Healthy", 1000)
	donor := fx.CreateDonor(ctx, "alice")

	now := time.Now()
	fx.CreateDonation(ctx, donor.ID, drifted.ID, 100, now)
	fx.CreateDonation(ctx, donor.ID, healthy.ID, 40, now)

	campaigns := campaignstore.New(db)

	// healthy is in sync with its ledger; drifted simulates a crash between
	// the ledger write and the total update.
	if err := campaigns.SetCollected(ctx, healthy.ID, 40); err != nil {
		t.Fatalf("SetCollected failed: %v", err)
	}
	if err := campaigns.SetCollected(ctx, drifted.ID, 60); err != nil {
		t.Fatalf("SetCollected failed: %v", err)
	}

	w := NewReconcile(donationstore.New(db), campaigns, zap.NewNop(), "@hourly")
	checked, repaired, err := w.RunOnce(ctx)
	if err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if checked != 2 {
		t.Errorf("expected 2 campaigns checked, got %d", checked)
	}
	if repaired != 1 {
		t.Errorf("expected 1 campaign repaired, got %d", repaired)
	}

	got, err := campaigns.GetByID(ctx, drifted.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CollectedAmount != 100 {
		t.Errorf("expected repaired total 100, got %v", got.CollectedAmount)
	}
}

func TestRunOnce_ZeroesCampaignWithNoLedgerEntries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	organizer := fx.CreateOrganizer(ctx, "org")
	campaign := fx.CreateCampaign(ctx, organizer.ID, "Orphaned", 1000)

	campaigns := campaignstore.New(db)
	if err := campaigns.SetCollected(ctx, campaign.ID, 75); err != nil {
		t.Fatalf("SetCollected failed: %v", err)
	}

	w := NewReconcile(donationstore.New(db), campaigns, zap.NewNop(), "@hourly")
	if _, _, err := w.RunOnce(ctx); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}

	got, err := campaigns.GetByID(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CollectedAmount != 0 {
		t.Errorf("expected total reset to 0, got %v", got.CollectedAmount)
	}
}
