package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serenispa/database"
	"serenispa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no review matches the given id.
var ErrNotFound = errors.New("review not found")

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review record.
	Create(review *models.Review) error
	// ListApproved retrieves approved reviews, newest first.
	ListApproved() ([]models.Review, error)
	// UpdateStatus sets the status of the review with the given id.
	UpdateStatus(id, status string) error
}

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &MongoReviewRepo{coll: database.Collection("reviews")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListApproved retrieves approved reviews, newest first.
func (r *MongoReviewRepo) ListApproved() ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": models.ReviewApproved}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// UpdateStatus sets the status of the review with the given id.
func (r *MongoReviewRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update review with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
