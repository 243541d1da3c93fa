package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"serenispa/database"
	"serenispa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// activeFilter matches every booking that still occupies its slot.
func activeFilter() bson.M {
	return bson.M{"status": bson.M{"$ne": models.BookingCancelled}}
}

// Create inserts a new booking document. A duplicate-key rejection from the
// unique slot index is reported as ErrDuplicateSlot.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

// List retrieves bookings matching the filter.
func (r *MongoBookingRepo) List(filter ListFilter) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.UserEmail != "" {
		query["userEmail"] = filter.UserEmail
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// FindActiveSlot returns the non-cancelled booking occupying the given slot,
// or nil when the slot is free.
func (r *MongoBookingRepo) FindActiveSlot(date, timeSlot, master string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := activeFilter()
	query["date"] = date
	query["time"] = timeSlot
	query["master"] = master

	var b models.Booking
	if err := r.coll.FindOne(ctx, query).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	return &b, nil
}

// CountByUserEmail counts all bookings ever made with the given email.
func (r *MongoBookingRepo) CountByUserEmail(email string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"userEmail": email})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for %s: %w", email, err)
	}
	return count, nil
}

// UpdateStatus sets the status of the booking with the given id.
func (r *MongoBookingRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActiveSince retrieves non-cancelled bookings with date >= fromDate.
func (r *MongoBookingRepo) ListActiveSince(fromDate string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := activeFilter()
	if fromDate != "" {
		// Dates are "YYYY-MM-DD" strings, so lexicographic $gte is correct.
		query["date"] = bson.M{"$gte": fromDate}
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings since %s: %w", fromDate, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListConfirmedForDate retrieves confirmed bookings on the given date.
func (r *MongoBookingRepo) ListConfirmedForDate(date string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date, "status": models.BookingConfirmed})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
