package review

import (
	"errors"
	"fmt"
	"time"

	reviewRepo "serenispa/database/repository/review"
	"serenispa/models"

	"github.com/google/uuid"
)

var (
	// ErrValidation wraps missing or malformed request fields.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals that no review matches the given id.
	ErrNotFound = reviewRepo.ErrNotFound
)

// SubmitRequest carries the fields of a review submission.
type SubmitRequest struct {
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Service   string `json:"service"`
}

// ReviewService defines review submission, listing and moderation.
type ReviewService interface {
	// Submit stores a new review with status pending.
	Submit(req SubmitRequest) (*models.Review, error)
	// ListApproved retrieves approved reviews, newest first.
	ListApproved() ([]models.Review, error)
	// SetStatus moderates a review (pending or approved).
	SetStatus(id, status string) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}

// Submit validates and stores a new pending review. Users never mutate a
// review after submission; only moderation changes its status.
func (s *DefaultReviewService) Submit(req SubmitRequest) (*models.Review, error) {
	if req.UserName == "" || req.UserEmail == "" || req.Comment == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	r := &models.Review{
		ID:        uuid.NewString(),
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Service:   req.Service,
		Status:    models.ReviewPending,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListApproved retrieves approved reviews, newest first.
func (s *DefaultReviewService) ListApproved() ([]models.Review, error) {
	return s.Repo.ListApproved()
}

// SetStatus moderates a review.
func (s *DefaultReviewService) SetStatus(id, status string) error {
	if status != models.ReviewPending && status != models.ReviewApproved {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.Repo.UpdateStatus(id, status)
}
