package bookingRepo

import (
	"fmt"
	"time"

	"serenispa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
// The partial unique index over (date, time, master) is the real guard
// against double-booking: the pre-insert availability check only exists to
// produce a friendly conflict message, while concurrent inserts for the same
// slot are serialized by the index. Partial filters cannot express $ne, so
// the index enumerates the statuses that occupy a slot (requires MongoDB 6.0+).
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userEmail", Value: 1}}},
		{
			Keys: bson.D{
				{Key: "date", Value: 1},
				{Key: "time", Value: 1},
				{Key: "master", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []string{models.BookingConfirmed, models.BookingCompleted}},
				}),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
