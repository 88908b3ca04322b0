package repositories

import (
	"context"
	"errors"

	"github.com/clubsphere/backend/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) FindOneByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) InsertOne(ctx context.Context, user entities.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *UserRepository) UpdateLastLoggedIn(ctx context.Context, email, loggedInAt string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"last_loggedIn": loggedInAt}},
	)
	return err
}

// UpdateRole is unconditional: it does not check that the target user exists.
func (r *UserRepository) UpdateRole(ctx context.Context, email, role string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}},
	)
	return err
}

func (r *UserRepository) FindAllExcept(ctx context.Context, email string) ([]*entities.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": bson.M{"$ne": email}})
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0)
	err = cursor.All(ctx, &users)
	return users, err
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *UserRepository) CountExcept(ctx context.Context, email string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"email": bson.M{"$ne": email}})
}
