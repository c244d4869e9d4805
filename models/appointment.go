package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentType is a catalog entry describing one bookable treatment.
// Slots keeps its stored order; availability projections subtract booked
// times without re-sorting.
type AppointmentType struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`   // unique treatment key
	Slots []string           `bson:"slots" json:"slots"` // ordered time labels
	Price float64            `bson:"price" json:"price"`
}

// Specialty is a names-only projection of the catalog.
type Specialty struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
