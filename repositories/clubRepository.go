package repositories

import (
	"context"
	"errors"

	"github.com/clubsphere/backend/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClubRepository struct {
	collection *mongo.Collection
}

func NewClubRepository(db *mongo.Database) *ClubRepository {
	return &ClubRepository{
		collection: db.Collection("clubs"),
	}
}

func (r *ClubRepository) InsertOne(ctx context.Context, club entities.Club) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, club)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *ClubRepository) FindOneByID(ctx context.Context, id string) (*entities.Club, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var club entities.Club
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&club)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &club, nil
}

func (r *ClubRepository) FindAll(ctx context.Context) ([]*entities.Club, error) {
	return r.find(ctx, bson.M{})
}

func (r *ClubRepository) FindManyByStatus(ctx context.Context, status string) ([]*entities.Club, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *ClubRepository) FindManyByManagerEmail(ctx context.Context, email string) ([]*entities.Club, error) {
	return r.find(ctx, bson.M{"managerEmail": email})
}

// FindManyByIDs resolves hex string ids; unparseable ids are skipped rather
// than failing the whole lookup.
func (r *ClubRepository) FindManyByIDs(ctx context.Context, ids []string) ([]*entities.Club, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}

	return r.find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
}

func (r *ClubRepository) find(ctx context.Context, filter bson.M) ([]*entities.Club, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	clubs := make([]*entities.Club, 0)
	err = cursor.All(ctx, &clubs)
	return clubs, err
}

// UpdateFields applies a merge-patch: only the supplied fields are set, and a
// supplied _id is silently dropped.
func (r *ClubRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
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

func (r *ClubRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
