package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "serenispa/database/repository/booking"
	userRepo "serenispa/database/repository/user"
	"serenispa/models"
	"serenispa/services/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrValidation wraps missing or malformed request fields.
	ErrValidation = errors.New("validation failed")
	// ErrSlotTaken signals that the requested slot is occupied for the master.
	ErrSlotTaken = errors.New("time slot is already booked for this master")
	// ErrNotFound signals that no booking matches the given id.
	ErrNotFound = bookingRepo.ErrNotFound
)

// CreateRequest carries the fields of a booking submission.
type CreateRequest struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Service   string `json:"service"`
	Master    string `json:"master"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhone string `json:"userPhone"`
	Duration  int    `json:"duration"`
	Price     string `json:"price"`
}

// BookingService defines the booking availability operations.
type BookingService interface {
	// Create validates the request, checks slot availability and commits a
	// confirmed booking.
	Create(req CreateRequest) (*models.Booking, error)
	// Cancel marks the booking as cancelled. Records are never deleted.
	Cancel(id string) error
	// List retrieves bookings, optionally filtered by user email and date.
	List(userEmail, date string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Users  userRepo.UserRepository
	Mailer mailer.Mailer
	// Prices is the shared service price list; it fills a quote when the
	// client omits one, and reporting reads the same table.
	Prices map[string]int
	Logger *zap.Logger
}

// Create validates the request, checks the slot and inserts the booking.
//
// The pre-insert availability lookup is advisory: it produces the conflict
// answer in the common case. The unique slot index is what actually prevents
// two concurrent requests from both committing, so a duplicate-key on insert
// is mapped to the same conflict error.
func (s *DefaultBookingService) Create(req CreateRequest) (*models.Booking, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindActiveSlot(req.Date, req.Time, req.Master)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	// A customer's first booking decides their preferred master. The count
	// here is advisory too: the repository's set-once update guarantees an
	// already-assigned master is never overwritten.
	count, err := s.Repo.CountByUserEmail(req.UserEmail)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if err := s.Users.SetPreferredMaster(req.UserEmail, req.Master); err != nil {
			return nil, err
		}
	}

	duration := req.Duration
	if duration == 0 {
		duration = 60
	}
	price := req.Price
	if price == "" {
		if p, ok := s.Prices[req.Service]; ok {
			price = fmt.Sprintf("%d ₴", p)
		}
	}

	b := &models.Booking{
		ID:        uuid.NewString(),
		Date:      req.Date,
		Time:      req.Time,
		Service:   req.Service,
		Master:    req.Master,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		UserPhone: req.UserPhone,
		Duration:  duration,
		Price:     price,
		Status:    models.BookingConfirmed,
		CreatedAt: time.Now(),
	}

	if err := s.Repo.Create(b); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	s.sendConfirmation(b)
	return b, nil
}

// Cancel marks the booking as cancelled.
func (s *DefaultBookingService) Cancel(id string) error {
	return s.Repo.UpdateStatus(id, models.BookingCancelled)
}

// List retrieves bookings, optionally filtered by user email and date.
func (s *DefaultBookingService) List(userEmail, date string) ([]models.Booking, error) {
	return s.Repo.List(bookingRepo.ListFilter{UserEmail: userEmail, Date: date})
}

func validateCreate(req CreateRequest) error {
	required := map[string]string{
		"date":      req.Date,
		"time":      req.Time,
		"service":   req.Service,
		"master":    req.Master,
		"userName":  req.UserName,
		"userEmail": req.UserEmail,
		"userPhone": req.UserPhone,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: missing required field %q", ErrValidation, field)
		}
	}
	return nil
}

// sendConfirmation emails the customer. A mail failure never fails the
// booking; the reservation is already committed.
func (s *DefaultBookingService) sendConfirmation(b *models.Booking) {
	if s.Mailer == nil {
		return
	}
	msg := mailer.Message{
		To:      b.UserEmail,
		Subject: "Booking confirmed",
		HTML: fmt.Sprintf(
			"<p>Dear %s,</p><p>Your booking for <b>%s</b> with %s on %s at %s is confirmed.</p>",
			b.UserName, b.Service, b.Master, b.Date, b.Time,
		),
	}
	if err := s.Mailer.Send([]mailer.Message{msg}); err != nil && s.Logger != nil {
		s.Logger.Warn("Failed to send booking confirmation",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}
