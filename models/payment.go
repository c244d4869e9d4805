package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed transaction. It references
// its booking by id; the booking's paid flag is flipped in the same settle.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
