package repositories

import (
	"context"

	"github.com/clubsphere/backend/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payments"),
	}
}

func (r *PaymentRepository) InsertOne(ctx context.Context, payment entities.Payment) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *PaymentRepository) ExistsByPaymentID(ctx context.Context, paymentID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"paymentId": paymentID})
	return count > 0, err
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]*entities.Payment, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *PaymentRepository) FindManyByEmail(ctx context.Context, memberEmail string) ([]*entities.Payment, error) {
	sort := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"memberEmail": memberEmail}, sort)
}

func (r *PaymentRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entities.Payment, error) {
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

	payments := make([]*entities.Payment, 0)
	err = cursor.All(ctx, &payments)
	return payments, err
}

func (r *PaymentRepository) SumAll(ctx context.Context) (float64, error) {
	return r.sum(ctx, bson.M{})
}

func (r *PaymentRepository) SumByClubIDs(ctx context.Context, clubIDs []string) (float64, error) {
	return r.sum(ctx, bson.M{"clubId": bson.M{"$in": clubIDs}})
}

func (r *PaymentRepository) sum(ctx context.Context, match bson.M) (float64, error) {
	pipeline := bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
