package eventRepo

import (
	"errors"

	"serenispa/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no event matches the given id.
var ErrNotFound = errors.New("event not found")

// EventRepository defines methods for event data access.
type EventRepository interface {
	// Create inserts a new event record.
	Create(event *models.Event) error
	// GetByID retrieves an event by its unique ID.
	GetByID(id string) (*models.Event, error)
	// ListSortedByDate retrieves all events ordered by date ascending.
	ListSortedByDate() ([]models.Event, error)
	// UpdateSetDocument applies a $set update to the event with the given id.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes an event record by its ID.
	Delete(id string) error
	// AddParticipant adds userID to the event's participant set.
	AddParticipant(eventID, userID string) error
	// RemoveParticipant removes userID from the event's participant set.
	// Removing an absent participant is a no-op.
	RemoveParticipant(eventID, userID string) error
}
