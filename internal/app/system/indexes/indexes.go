// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db, logger); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureCampaigns(ctx, db, logger); err != nil {
		problems = append(problems, "campaigns: "+err.Error())
	}
	if err := ensureDonations(ctx, db, logger); err != nil {
		problems = append(problems, "donations: "+err.Error())
	}
	if err := ensureComments(ctx, db, logger); err != nil {
		problems = append(problems, "comments: "+err.Error())
	}
	if err := ensureEvents(ctx, db, logger); err != nil {
		problems = append(problems, "events: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, logger *zap.Logger, models []mongo.IndexModel) error {
	names, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	logger.Info("ensured indexes",
		zap.String("collection", coll.Name()),
		zap.Strings("indexes", names))
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("users"), logger, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("uniq_email").
				SetUnique(true).
				SetSparse(true),
		},
	})
}

func ensureCampaigns(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("campaigns"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "organizer_id", Value: 1}},
			Options: options.Index().SetName("by_organizer"),
		},
		{
			// Public listings filter on status and sort by recency.
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_status_recent"),
		},
	})
}

func ensureDonations(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("donations"), logger, []mongo.IndexModel{
		{
			// Donor listings and ownership checks.
			Keys:    bson.D{{Key: "donor_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_donor_recent"),
		},
		{
			// Reconciliation groups Completed donations per campaign.
			Keys:    bson.D{{Key: "campaign_id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("by_campaign_status"),
		},
		{
			// Leaderboard aggregation matches on status first.
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("by_status"),
		},
	})
}

func ensureComments(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("comments"), logger, []mongo.IndexModel{
		{
			// Comment threads list per campaign, newest first.
			Keys:    bson.D{{Key: "campaign_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_campaign_recent"),
		},
	})
}

func ensureEvents(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("events"), logger, []mongo.IndexModel{
		{
			// Public listings filter on status and sort by start date.
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "start_date", Value: 1}},
			Options: options.Index().SetName("by_status_upcoming"),
		},
		{
			Keys:    bson.D{{Key: "organizer_id", Value: 1}},
			Options: options.Index().SetName("by_organizer"),
		},
	})
}
