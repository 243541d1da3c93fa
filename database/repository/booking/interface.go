package bookingRepo

import (
	"errors"

	"serenispa/models"
)

// ErrDuplicateSlot is returned by Create when the unique slot index rejects
// an insert for an already-taken (date, time, master) triple.
var ErrDuplicateSlot = errors.New("booking slot already taken")

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	UserEmail string
	Date      string
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// List retrieves bookings matching the filter.
	List(filter ListFilter) ([]models.Booking, error)
	// FindActiveSlot returns the non-cancelled booking occupying the given
	// slot, or nil when the slot is free.
	FindActiveSlot(date, timeSlot, master string) (*models.Booking, error)
	// CountByUserEmail counts all bookings ever made with the given email.
	CountByUserEmail(email string) (int64, error)
	// UpdateStatus sets the status of the booking with the given id.
	UpdateStatus(id, status string) error
	// ListActiveSince retrieves non-cancelled bookings with date >= fromDate.
	// An empty fromDate returns all non-cancelled bookings.
	ListActiveSince(fromDate string) ([]models.Booking, error)
	// ListConfirmedForDate retrieves confirmed bookings on the given date.
	ListConfirmedForDate(date string) ([]models.Booking, error)
}
