// internal/app/store/donations/donationstore.go
package donationstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("donation not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donations")}
}

func (s *Store) Create(ctx context.Context, d models.Donation) (models.Donation, error) {
	d.ID = primitive.NewObjectID()
	if d.PaymentMethod == "" {
		d.PaymentMethod = models.PaymentUPI
	}
	if d.Status == "" {
		d.Status = models.DonationPending
	}
	d.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Donation{}, err
	}
	return d, nil
}

// GetOwned fetches a donation only when it belongs to the given donor.
// A donation that exists but is owned by someone else is reported as
// not found, so the API never reveals other donors' ledger entries.
func (s *Store) GetOwned(ctx context.Context, id, donorID primitive.ObjectID) (models.Donation, error) {
	var d models.Donation
	err := s.c.FindOne(ctx, bson.M{"_id": id, "donor_id": donorID}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Donation{}, ErrNotFound
		}
		return models.Donation{}, err
	}
	return d, nil
}

// Delete removes a donation by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByDonor returns the donor's donations newest-first, each joined with
// a summary of its campaign. Donations whose campaign has since been
// deleted are kept with an empty campaign summary.
func (s *Store) ListByDonor(ctx context.Context, donorID primitive.ObjectID) ([]models.DonationWithCampaign, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "donor_id", Value: donorID}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "campaigns"},
			{Key: "localField", Value: "campaign_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "campaign"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$campaign"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.DonationWithCampaign
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats holds a donor's lifetime totals over Completed donations.
type Stats struct {
	TotalAmount    float64 `bson:"total_amount" json:"totalAmount"`
	TotalDonations int64   `bson:"total_donations" json:"totalDonations"`
}

// StatsByDonor sums the donor's Completed donations. A donor with no
// donations gets zeros, not an error.
func (s *Store) StatsByDonor(ctx context.Context, donorID primitive.ObjectID) (Stats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "donor_id", Value: donorID},
			{Key: "status", Value: models.DonationCompleted},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_amount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
			{Key: "total_donations", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return Stats{}, err
	}
	defer cur.Close(ctx)

	var stats Stats
	if cur.Next(ctx) {
		if err := cur.Decode(&stats); err != nil {
			return Stats{}, err
		}
	}
	return stats, cur.Err()
}

// CompletedSumsByCampaign recomputes each campaign's true collected amount
// from the ledger. Campaigns with no Completed donations are absent from
// the map (their true total is zero).
func (s *Store) CompletedSumsByCampaign(ctx context.Context) (map[primitive.ObjectID]float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: models.DonationCompleted}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$campaign_id"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[primitive.ObjectID]float64)
	for cur.Next(ctx) {
		var row struct {
			ID    primitive.ObjectID `bson:"_id"`
			Total float64            `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.ID] = row.Total
	}
	return out, cur.Err()
}
