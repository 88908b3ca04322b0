package repositories

import (
	"context"
	"errors"

	"github.com/clubsphere/backend/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventRegistrationRepository struct {
	collection *mongo.Collection
}

func NewEventRegistrationRepository(db *mongo.Database) *EventRegistrationRepository {
	return &EventRegistrationRepository{
		collection: db.Collection("event_registrations"),
	}
}

func (r *EventRegistrationRepository) InsertOne(ctx context.Context, registration entities.EventRegistration) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, registration)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicateKey
	}
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *EventRegistrationRepository) FindOneByEventAndEmail(ctx context.Context, eventID, userEmail string) (*entities.EventRegistration, error) {
	var registration entities.EventRegistration
	err := r.collection.FindOne(ctx, bson.M{"eventId": eventID, "userEmail": userEmail}).Decode(&registration)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &registration, nil
}

func (r *EventRegistrationRepository) FindManyByEventID(ctx context.Context, eventID string) ([]*entities.EventRegistration, error) {
	return r.find(ctx, bson.M{"eventId": eventID})
}

func (r *EventRegistrationRepository) FindManyByEmail(ctx context.Context, userEmail string) ([]*entities.EventRegistration, error) {
	return r.find(ctx, bson.M{"userEmail": userEmail})
}

func (r *EventRegistrationRepository) find(ctx context.Context, filter bson.M) ([]*entities.EventRegistration, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	registrations := make([]*entities.EventRegistration, 0)
	err = cursor.All(ctx, &registrations)
	return registrations, err
}

func (r *EventRegistrationRepository) CountRegisteredByEmail(ctx context.Context, userEmail string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"userEmail": userEmail,
		"status":    entities.RegistrationStatusRegistered,
	})
}
