package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor is an admin-managed staff record.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty" json:"specialty"` // matches an AppointmentType.Name
	ImageURL  string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
