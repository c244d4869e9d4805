package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`         // identity of the patient who booked
	Date          string             `bson:"date" json:"date"`           // calendar-day label, e.g. "2024-01-01"
	Treatment     string             `bson:"treatment" json:"treatment"` // references AppointmentType.Name
	Time          string             `bson:"time" json:"time"`           // one of the treatment's slot labels
	Price         float64            `bson:"price" json:"price"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// BookingResult is the payload returned from a booking attempt. A refused
// duplicate carries Acknowledged=false and a human-readable message naming
// the date; a stored booking carries the new document id.
type BookingResult struct {
	Acknowledged bool   `json:"acknowledged"`
	Message      string `json:"message,omitempty"`
	InsertedID   string `json:"insertedId,omitempty"`
}
