package campaigns

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	"github.com/dalemusser/fundhub/internal/domain/models"
	"github.com/dalemusser/fundhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestCreate_StartsPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	organizer := fx.CreateOrganizer(ctx, "org")

	h := NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/campaigns", map[string]any{
		"title":       "Clean Water",
		"description": "Wells for the village",
		"goalAmount":  5000,
		"category":    "Community",
		"deadline":    time.Now().AddDate(0, 2, 0).Format(time.RFC3339),
	})
	req = testutil.WithUser(req, organizer.ID, "org", models.RoleOrganizer)

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := testutil.DecodeJSON(t, rec)
	campaign, ok := body["campaign"].(map[string]any)
	if !ok {
		t.Fatalf("expected campaign in response, got %v", body)
	}
	if campaign["status"] != models.CampaignPending {
		t.Errorf("expected status pending, got %v", campaign["status"])
	}
	if campaign["collectedAmount"] != 0.0 {
		t.Errorf("expected collectedAmount 0, got %v", campaign["collectedAmount"])
	}
}

func TestCreate_RejectsPastDeadline(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/campaigns", map[string]any{
		"title":       "Too Late",
		"description": "desc",
		"goalAmount":  100,
		"category":    "Other",
		"deadline":    time.Now().AddDate(0, 0, -1).Format(time.RFC3339),
	})
	req = testutil.WithUser(req, primitive.NewObjectID(), "org", models.RoleOrganizer)

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreate_RejectsUnknownCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/campaigns", map[string]any{
		"title":       "Misc",
		"description": "desc",
		"goalAmount":  100,
		"category":    "Gambling",
		"deadline":    time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
	})
	req = testutil.WithUser(req, primitive.NewObjectID(), "org", models.RoleOrganizer)

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestList_ApprovedOnlyWithOrganizer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	organizer := fx.CreateOrganizer(ctx, "maria")
	fx.CreateCampaign(ctx, organizer.ID, "Approved One", 1000)

	store := campaignstore.New(db)
	if _, err := store.Create(ctx, models.Campaign{
		Title:       "Still Pending",
		OrganizerID: organizer.ID,
		GoalAmount:  100,
		Category:    "Other",
		Status:      models.CampaignPending,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	h := NewHandler(db, zap.NewNop())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/campaigns", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := testutil.DecodeJSON(t, rec)
	data, ok := body["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected 1 approved campaign, got %v", body["data"])
	}
	entry := data[0].(map[string]any)
	if entry["title"] != "Approved One" {
		t.Errorf("expected the approved campaign, got %v", entry["title"])
	}
	org, ok := entry["organizer"].(map[string]any)
	if !ok || org["displayName"] != "maria" {
		t.Errorf("expected organizer display fields, got %v", entry["organizer"])
	}
}

func TestGet_InvalidAndMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/nope", nil)
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid id, got %d", rec.Code)
	}

	missing := primitive.NewObjectID().Hex()
	req = httptest.NewRequest(http.MethodGet, "/api/campaigns/"+missing, nil)
	req = testutil.WithChiURLParam(req, "id", missing)
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing campaign, got %d", rec.Code)
	}
}

func TestUpdate_OwnerOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	owner := fx.CreateOrganizer(ctx, "owner")
	other := fx.CreateOrganizer(ctx, "other")
	campaign := fx.CreateCampaign(ctx, owner.ID, "Original Title", 1000)

	h := NewHandler(db, zap.NewNop())

	// A different organizer may not edit.
	req := testutil.NewJSONRequest(t, http.MethodPatch, "/api/campaigns/"+campaign.ID.Hex(), map[string]any{
		"title": "Hijacked",
	})
	req = testutil.WithUser(req, other.ID, "other", models.RoleOrganizer)
	req = testutil.WithChiURLParam(req, "id", campaign.ID.Hex())

	rec := httptest.NewRecorder()
	h.Update(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d: %s", rec.Code, rec.Body.String())
	}

	// The owner may.
	req = testutil.NewJSONRequest(t, http.MethodPatch, "/api/campaigns/"+campaign.ID.Hex(), map[string]any{
		"title":      "New Title",
		"goalAmount": 2000,
	})
	req = testutil.WithUser(req, owner.ID, "owner", models.RoleOrganizer)
	req = testutil.WithChiURLParam(req, "id", campaign.ID.Hex())

	rec = httptest.NewRecorder()
	h.Update(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	got, err := campaignstore.New(db).GetByID(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "New Title" || got.GoalAmount != 2000 {
		t.Errorf("update not applied: %+v", got)
	}
	if got.Description != campaign.Description {
		t.Errorf("untouched field changed: %q", got.Description)
	}
}

func TestUpdate_AdminMayEditAnyCampaign(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	owner := fx.CreateOrganizer(ctx, "owner")
	admin := fx.CreateUser(ctx, "root", models.RoleAdmin)
	campaign := fx.CreateCampaign(ctx, owner.ID, "Original", 1000)

	h := NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, http.MethodPatch, "/api/campaigns/"+campaign.ID.Hex(), map[string]any{
		"title": "Moderated Title",
	})
	req = testutil.WithUser(req, admin.ID, "root", models.RoleAdmin)
	req = testutil.WithChiURLParam(req, "id", campaign.ID.Hex())

	rec := httptest.NewRecorder()
	h.Update(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDelete_OwnerOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	owner := fx.CreateOrganizer(ctx, "owner")
	other := fx.CreateOrganizer(ctx, "other")
	campaign := fx.CreateCampaign(ctx, owner.ID, "Doomed", 1000)

	h := NewHandler(db, zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/api/campaigns/"+campaign.ID.Hex(), nil)
	req = testutil.WithUser(req, other.ID, "other", models.RoleOrganizer)
	req = testutil.WithChiURLParam(req, "id", campaign.ID.Hex())

	rec := httptest.NewRecorder()
	h.Delete(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/campaigns/"+campaign.ID.Hex(), nil)
	req = testutil.WithUser(req, owner.ID, "owner", models.RoleOrganizer)
	req = testutil.WithChiURLParam(req, "id", campaign.ID.Hex())

	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if _, err := campaignstore.New(db).GetByID(ctx, campaign.ID); err == nil {
		t.Error("expected campaign to be gone")
	}
}
