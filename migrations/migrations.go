package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the consistency rules depend on.
//
// memberships.paymentId is the dedup key for the payment completion flow: two
// concurrent completion notifications for the same transaction id both pass
// the existence check, and the unique index turns the second insert into a
// duplicate-key error instead of a duplicate membership.
//
// event_registrations (eventId, userEmail) keeps a user from registering for
// the same event twice.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("memberships").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "paymentId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"paymentId": bson.M{"$exists": true}}),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("event_registrations").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "eventId", Value: 1},
			{Key: "userEmail", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
