// Package donorqueries provides the read-only aggregation behind the donor
// leaderboard.
package donorqueries

// Terminology:
//   - Donor: a user with at least one Completed donation.
//   - Total: the sum of a donor's Completed donation amounts.
//
// Totals is a full rescan of the donations collection on every call. That
// matches the query rate this system sees; if leaderboards ever get hot,
// this package is the seam for a periodically materialized rank table.

import (
	"context"
	"time"

	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Aggregator is a minimal interface satisfied by *mongo.Database.
// It allows unit-testing aggregation helpers with a fake.
type Aggregator interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// DonorTotal is one row of the globally sorted donor totals.
type DonorTotal struct {
	DonorID        primitive.ObjectID `bson:"_id"`
	TotalAmount    float64            `bson:"total_amount"`
	DonationCount  int64              `bson:"donation_count"`
	FirstDonatedAt time.Time          `bson:"first_donated_at"`
}

// Totals aggregates Completed donations per donor, sorted by total amount
// descending. Ties break on earliest first donation, then donor id, so the
// ordering is deterministic for equal totals.
func Totals(ctx context.Context, db Aggregator) ([]DonorTotal, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "status", Value: models.DonationCompleted},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$donor_id"},
			{Key: "total_amount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
			{Key: "donation_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "first_donated_at", Value: bson.D{{Key: "$min", Value: "$created_at"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "total_amount", Value: -1},
			{Key: "first_donated_at", Value: 1},
			{Key: "_id", Value: 1},
		}}},
	}

	cur, err := db.Collection("donations").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var totals []DonorTotal
	for cur.Next(ctx) {
		var row DonorTotal
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		totals = append(totals, row)
	}
	return totals, cur.Err()
}
