package review

import (
	"testing"

	reviewRepo "serenispa/database/repository/review"
	"serenispa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReviewRepo is an in-memory ReviewRepository.
type stubReviewRepo struct {
	reviews []models.Review
}

func (s *stubReviewRepo) Create(review *models.Review) error {
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *stubReviewRepo) ListApproved() ([]models.Review, error) {
	var out []models.Review
	for _, r := range s.reviews {
		if r.Status == models.ReviewApproved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubReviewRepo) UpdateStatus(id, status string) error {
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews[i].Status = status
			return nil
		}
	}
	return reviewRepo.ErrNotFound
}

func validSubmit() SubmitRequest {
	return SubmitRequest{
		UserName:  "Anna",
		UserEmail: "anna@example.com",
		Rating:    5,
		Comment:   "Чудовий масаж!",
		Service:   "Классический массаж",
	}
}

func TestSubmitReview(t *testing.T) {
	svc := &DefaultReviewService{Repo: &stubReviewRepo{}}

	r, err := svc.Submit(validSubmit())
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, models.ReviewPending, r.Status, "new reviews await moderation")
}

func TestSubmitReviewValidation(t *testing.T) {
	svc := &DefaultReviewService{Repo: &stubReviewRepo{}}

	req := validSubmit()
	req.Comment = ""
	_, err := svc.Submit(req)
	assert.ErrorIs(t, err, ErrValidation)

	req = validSubmit()
	req.Rating = 0
	_, err = svc.Submit(req)
	assert.ErrorIs(t, err, ErrValidation)

	req = validSubmit()
	req.Rating = 6
	_, err = svc.Submit(req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestModeration(t *testing.T) {
	repo := &stubReviewRepo{}
	svc := &DefaultReviewService{Repo: repo}

	r, err := svc.Submit(validSubmit())
	require.NoError(t, err)

	// Pending reviews are hidden from the public listing.
	approved, err := svc.ListApproved()
	require.NoError(t, err)
	assert.Empty(t, approved)

	require.NoError(t, svc.SetStatus(r.ID, models.ReviewApproved))
	approved, err = svc.ListApproved()
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, r.ID, approved[0].ID)

	// Moderation can send a review back to pending, nothing else.
	assert.NoError(t, svc.SetStatus(r.ID, models.ReviewPending))
	assert.ErrorIs(t, svc.SetStatus(r.ID, "rejected"), ErrValidation)

	assert.ErrorIs(t, svc.SetStatus("missing", models.ReviewApproved), ErrNotFound)
}
