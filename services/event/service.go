package event

import (
	"errors"
	"fmt"
	"time"

	eventRepo "serenispa/database/repository/event"
	"serenispa/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrValidation wraps missing or malformed request fields.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals that no event matches the given id.
	ErrNotFound = eventRepo.ErrNotFound
	// ErrAlreadyRegistered signals a duplicate registration attempt.
	ErrAlreadyRegistered = errors.New("already registered")
	// ErrEventFull signals that the event reached its capacity.
	ErrEventFull = errors.New("event is full")
)

// CreateRequest carries the fields of a new event.
type CreateRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	Image           string `json:"image"`
	MaxParticipants int    `json:"maxParticipants"`
}

// UpdateRequest carries a partial event update; nil fields keep their value.
type UpdateRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	Location        *string `json:"location"`
	Image           *string `json:"image"`
	MaxParticipants *int    `json:"maxParticipants"`
}

// EventService defines event CRUD and registration operations.
type EventService interface {
	List() ([]models.Event, error)
	Get(id string) (*models.Event, error)
	Create(req CreateRequest) (*models.Event, error)
	Update(id string, req UpdateRequest) (*models.Event, error)
	Delete(id string) error
	// Register adds the user to the event's participant set, rejecting
	// duplicates and over-capacity registrations.
	Register(eventID, userID string) (*models.Event, error)
	// Unregister removes the user; removing a non-participant is a no-op.
	Unregister(eventID, userID string) (*models.Event, error)
}

// DefaultEventService is the production implementation.
type DefaultEventService struct {
	Repo eventRepo.EventRepository
}

// List retrieves all events sorted by date.
func (s *DefaultEventService) List() ([]models.Event, error) {
	return s.Repo.ListSortedByDate()
}

// Get retrieves an event by id.
func (s *DefaultEventService) Get(id string) (*models.Event, error) {
	return s.Repo.GetByID(id)
}

// Create validates and inserts a new event.
func (s *DefaultEventService) Create(req CreateRequest) (*models.Event, error) {
	required := map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"date":        req.Date,
		"time":        req.Time,
		"location":    req.Location,
	}
	for field, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%w: missing required field %q", ErrValidation, field)
		}
	}

	event := &models.Event{
		ID:                     uuid.NewString(),
		Title:                  req.Title,
		Description:            req.Description,
		Date:                   req.Date,
		Time:                   req.Time,
		Location:               req.Location,
		Image:                  req.Image,
		MaxParticipants:        req.MaxParticipants,
		RegisteredParticipants: []string{},
		CreatedAt:              time.Now(),
	}
	if err := s.Repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update applies the provided fields and returns the updated event.
func (s *DefaultEventService) Update(id string, req UpdateRequest) (*models.Event, error) {
	updateDoc := bson.M{}
	if req.Title != nil {
		updateDoc["title"] = *req.Title
	}
	if req.Description != nil {
		updateDoc["description"] = *req.Description
	}
	if req.Date != nil {
		updateDoc["date"] = *req.Date
	}
	if req.Time != nil {
		updateDoc["time"] = *req.Time
	}
	if req.Location != nil {
		updateDoc["location"] = *req.Location
	}
	if req.Image != nil {
		updateDoc["image"] = *req.Image
	}
	if req.MaxParticipants != nil {
		updateDoc["maxParticipants"] = *req.MaxParticipants
	}

	if len(updateDoc) > 0 {
		if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(id)
}

// Delete removes an event.
func (s *DefaultEventService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// Register adds the user to the event's participant set. The duplicate check
// is an explicit rejection, not a silent no-op: the caller is told their
// registration already exists. Capacity is enforced here at registration
// time, never at event creation.
func (s *DefaultEventService) Register(eventID, userID string) (*models.Event, error) {
	event, err := s.Repo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	for _, p := range event.RegisteredParticipants {
		if p == userID {
			return nil, ErrAlreadyRegistered
		}
	}
	if event.MaxParticipants > 0 && len(event.RegisteredParticipants) >= event.MaxParticipants {
		return nil, ErrEventFull
	}

	if err := s.Repo.AddParticipant(eventID, userID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(eventID)
}

// Unregister removes the user from the event's participant set.
func (s *DefaultEventService) Unregister(eventID, userID string) (*models.Event, error) {
	if err := s.Repo.RemoveParticipant(eventID, userID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(eventID)
}
