package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsRepository runs the month-bucketed aggregations behind the
// dashboard endpoints. Creation timestamps are stored as RFC3339 strings, so a
// document's bucket key is the leading YYYY-MM of the date field.
type AnalyticsRepository struct {
	db *mongo.Database
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: db,
	}
}

// MonthlyCounts groups matching documents by month of dateField and counts
// them. The result maps YYYY-MM keys to counts; months with no documents are
// simply absent.
func (r *AnalyticsRepository) MonthlyCounts(ctx context.Context, collection, dateField string, match bson.M) (map[string]float64, error) {
	return r.aggregate(ctx, collection, dateField, match, 1)
}

// MonthlySums groups matching documents by month of dateField and sums
// sumField within each bucket.
func (r *AnalyticsRepository) MonthlySums(ctx context.Context, collection, dateField, sumField string, match bson.M) (map[string]float64, error) {
	return r.aggregate(ctx, collection, dateField, match, "$"+sumField)
}

func (r *AnalyticsRepository) aggregate(ctx context.Context, collection, dateField string, match bson.M, sumExpr interface{}) (map[string]float64, error) {
	if match == nil {
		match = bson.M{}
	}

	pipeline := bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id":   bson.M{"$substrBytes": bson.A{"$" + dateField, 0, 7}},
			"total": bson.M{"$sum": sumExpr},
		}},
	}

	cursor, err := r.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var results []struct {
		Month string  `bson:"_id"`
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	buckets := make(map[string]float64, len(results))
	for _, result := range results {
		buckets[result.Month] = result.Total
	}

	return buckets, nil
}
