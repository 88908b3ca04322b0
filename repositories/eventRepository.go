package repositories

import (
	"context"
	"errors"

	"github.com/clubsphere/backend/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		collection: db.Collection("events"),
	}
}

func (r *EventRepository) InsertOne(ctx context.Context, event entities.Event) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *EventRepository) FindOneByID(ctx context.Context, id string) (*entities.Event, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var event entities.Event
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*entities.Event, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *EventRepository) FindManyByClubID(ctx context.Context, clubID string) ([]*entities.Event, error) {
	return r.find(ctx, bson.M{"clubId": clubID}, nil)
}

func (r *EventRepository) FindManyByEventIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entities.Event, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// FindUpcoming returns events on or after the given YYYY-MM-DD date, nearest
// first. Dates are stored as strings, so the comparison is lexicographic.
func (r *EventRepository) FindUpcoming(ctx context.Context, fromDate string) ([]*entities.Event, error) {
	sort := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return r.find(ctx, bson.M{"date": bson.M{"$gte": fromDate}}, sort)
}

func (r *EventRepository) FindUpcomingByClubIDs(ctx context.Context, clubIDs []string, fromDate string) ([]*entities.Event, error) {
	sort := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return r.find(ctx, bson.M{
		"clubId": bson.M{"$in": clubIDs},
		"date":   bson.M{"$gte": fromDate},
	}, sort)
}

func (r *EventRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entities.Event, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	events := make([]*entities.Event, 0)
	err = cursor.All(ctx, &events)
	return events, err
}

// UpdateFields applies a merge-patch: only the supplied fields are set, and a
// supplied _id is silently dropped.
func (r *EventRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": sanitizeFields(fields)},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *EventRepository) DeleteOneByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func (r *EventRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *EventRepository) CountByClubID(ctx context.Context, clubID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"clubId": clubID})
}

func (r *EventRepository) CountByClubIDs(ctx context.Context, clubIDs []string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"clubId": bson.M{"$in": clubIDs}})
}
