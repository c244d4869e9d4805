package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin marks a user allowed through the admin gate.
const RoleAdmin = "admin"

// User represents a registered patient or administrator.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"` // "" or "admin"
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
