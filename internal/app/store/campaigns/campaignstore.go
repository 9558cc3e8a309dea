// internal/app/store/campaigns/campaignstore.go
package campaignstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("campaign not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("campaigns")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Campaign, error) {
	var c models.Campaign
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Campaign{}, ErrNotFound
		}
		return models.Campaign{}, err
	}
	return c, nil
}

func (s *Store) Create(ctx context.Context, c models.Campaign) (models.Campaign, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CollectedAmount = 0
	if c.Status == "" {
		c.Status = models.CampaignPending
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Campaign{}, err
	}
	return c, nil
}

// ListApproved returns approved campaigns newest-first.
func (s *Store) ListApproved(ctx context.Context) ([]models.Campaign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"status": models.CampaignApproved}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Campaign
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInfo applies a partial edit. Fields left nil keep their value;
// CollectedAmount and Status are never touched here.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now().UTC()
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a campaign by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

/* -------------------------------------------------------------------------- */
/* Aggregate seam                                                             */
/*                                                                            */
/* Every write to collected_amount goes through ApplyDonation or             */
/* ReverseDonation. Both are single atomic document updates, so concurrent   */
/* donations to one campaign never lose increments; there is deliberately no */
/* read-modify-write path.                                                   */
/* -------------------------------------------------------------------------- */

// ApplyDonation adds a completed donation's amount to the campaign total.
func (s *Store) ApplyDonation(ctx context.Context, id primitive.ObjectID, amount float64) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"collected_amount": amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReverseDonation subtracts a deleted donation's amount from the campaign
// total, clamped at zero. The clamp runs inside the update pipeline so the
// whole reverse stays a single atomic operation.
func (s *Store) ReverseDonation(ctx context.Context, id primitive.ObjectID, amount float64) error {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "collected_amount", Value: bson.D{{Key: "$max", Value: bson.A{
				0,
				bson.D{{Key: "$subtract", Value: bson.A{"$collected_amount", amount}}},
			}}}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}
	res, err := s.c.UpdateByID(ctx, id, pipeline)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetCollected overwrites the running total. Only the reconcile worker
// calls this, after recomputing the true sum from the ledger.
func (s *Store) SetCollected(ctx context.Context, id primitive.ObjectID, amount float64) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"collected_amount": amount, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CollectedTotals returns every campaign's stored running total, keyed by id.
// Used by the reconcile worker to diff against the ledger.
func (s *Store) CollectedTotals(ctx context.Context) (map[primitive.ObjectID]float64, error) {
	opts := options.Find().SetProjection(bson.M{"collected_amount": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[primitive.ObjectID]float64)
	for cur.Next(ctx) {
		var row struct {
			ID              primitive.ObjectID `bson:"_id"`
			CollectedAmount float64            `bson:"collected_amount"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.ID] = row.CollectedAmount
	}
	return out, cur.Err()
}
