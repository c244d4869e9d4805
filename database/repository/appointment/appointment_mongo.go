package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorchamber/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a catalog repository over the given database.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	repo := &MongoAppointmentRepo{coll: db.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes keeps treatment names unique: availability matches bookings
// to types by name alone.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves every appointment type in the catalog.
func (r *MongoAppointmentRepo) GetAll() ([]models.AppointmentType, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.AppointmentType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode appointment types: %w", err)
	}
	return types, nil
}

// GetSpecialties retrieves a names-only projection of the catalog.
func (r *MongoAppointmentRepo) GetSpecialties() ([]models.Specialty, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	return specialties, nil
}
