// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleDonor     = "donor"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// User represents donors, organizers, and admins.
//
// NOTE:
//   - Account creation and credential handling live in the auth service;
//     FundHub only reads display fields and roles from this collection.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DisplayName string             `bson:"display_name" json:"displayName"`
	Email       string             `bson:"email" json:"email"`
	AvatarURL   string             `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	Role        string             `bson:"role" json:"role"` // donor | organizer | admin

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserDisplay is the projection of a user embedded in leaderboard entries
// and campaign listings.
type UserDisplay struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	DisplayName string             `bson:"display_name" json:"displayName"`
	Email       string             `bson:"email" json:"email"`
	AvatarURL   string             `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
}
