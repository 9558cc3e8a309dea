// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"

	"github.com/dalemusser/fundhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Accounts are owned by the external auth service; this store only reads
// display fields for leaderboard and campaign responses.

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("user not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

// DisplayByIDs fetches display projections for a set of user ids, keyed by
// id. Missing users are simply absent from the map; callers substitute a
// placeholder.
func (s *Store) DisplayByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserDisplay, error) {
	out := make(map[primitive.ObjectID]models.UserDisplay, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	opts := options.Find().SetProjection(bson.M{
		"display_name": 1,
		"email":        1,
		"avatar_url":   1,
	})
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var u models.UserDisplay
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, cur.Err()
}
