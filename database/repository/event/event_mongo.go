package eventRepo

import (
	"context"
	"fmt"
	"time"

	"serenispa/database"
	"serenispa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo() EventRepository {
	coll := database.Collection("events")
	repo := &MongoEventRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create event indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new event document.
func (r *MongoEventRepo) Create(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by its unique ID.
func (r *MongoEventRepo) GetByID(id string) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	if event.RegisteredParticipants == nil {
		event.RegisteredParticipants = []string{}
	}
	return &event, nil
}

// ListSortedByDate retrieves all events ordered by date ascending.
func (r *MongoEventRepo) ListSortedByDate() ([]models.Event, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	for i := range events {
		if events[i].RegisteredParticipants == nil {
			events[i].RegisteredParticipants = []string{}
		}
	}
	return events, nil
}

// UpdateSetDocument applies a $set update to the event with the given id.
func (r *MongoEventRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update event with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an event document by its ID.
func (r *MongoEventRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddParticipant adds userID to the event's participant set. $addToSet keeps
// the list duplicate-free even under concurrent registrations.
func (r *MongoEventRepo) AddParticipant(eventID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"registeredParticipants": userID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": eventID}, update)
	if err != nil {
		return fmt.Errorf("failed to register participant for event %s: %w", eventID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveParticipant removes userID from the event's participant set.
func (r *MongoEventRepo) RemoveParticipant(eventID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"registeredParticipants": userID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": eventID}, update)
	if err != nil {
		return fmt.Errorf("failed to unregister participant for event %s: %w", eventID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
