package repositories

import (
	"context"
	"errors"

	"github.com/clubsphere/backend/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateKey reports an insert that violated a unique index. The payment
// completion flow relies on it to detect an already-processed transaction.
var ErrDuplicateKey = errors.New("duplicate key")

type MembershipRepository struct {
	collection *mongo.Collection
}

func NewMembershipRepository(db *mongo.Database) *MembershipRepository {
	return &MembershipRepository{
		collection: db.Collection("memberships"),
	}
}

func (r *MembershipRepository) InsertOne(ctx context.Context, membership entities.Membership) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, membership)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicateKey
	}
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MembershipRepository) FindOneByPaymentID(ctx context.Context, paymentID string) (*entities.Membership, error) {
	return r.findOne(ctx, bson.M{"paymentId": paymentID})
}

func (r *MembershipRepository) FindOneByClubAndEmail(ctx context.Context, clubID, memberEmail string) (*entities.Membership, error) {
	return r.findOne(ctx, bson.M{"clubId": clubID, "memberEmail": memberEmail})
}

func (r *MembershipRepository) findOne(ctx context.Context, filter bson.M) (*entities.Membership, error) {
	var membership entities.Membership
	err := r.collection.FindOne(ctx, filter).Decode(&membership)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) FindManyByClubID(ctx context.Context, clubID string) ([]*entities.Membership, error) {
	return r.find(ctx, bson.M{"clubId": clubID})
}

func (r *MembershipRepository) FindManyActiveByEmail(ctx context.Context, memberEmail string) ([]*entities.Membership, error) {
	return r.find(ctx, bson.M{"memberEmail": memberEmail, "status": entities.MembershipStatusActive})
}

func (r *MembershipRepository) find(ctx context.Context, filter bson.M) ([]*entities.Membership, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	memberships := make([]*entities.Membership, 0)
	err = cursor.All(ctx, &memberships)
	return memberships, err
}

func (r *MembershipRepository) DeleteOneByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func (r *MembershipRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MembershipRepository) CountByClubID(ctx context.Context, clubID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"clubId": clubID})
}

func (r *MembershipRepository) CountActiveByClubID(ctx context.Context, clubID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"clubId": clubID, "status": entities.MembershipStatusActive})
}

func (r *MembershipRepository) CountActiveByClubIDs(ctx context.Context, clubIDs []string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"clubId": bson.M{"$in": clubIDs},
		"status": entities.MembershipStatusActive,
	})
}

func (r *MembershipRepository) CountActiveByEmail(ctx context.Context, memberEmail string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"memberEmail": memberEmail,
		"status":      entities.MembershipStatusActive,
	})
}
