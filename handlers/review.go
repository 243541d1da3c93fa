package handlers

import (
	"errors"
	"net/http"

	"serenispa/models"
	"serenispa/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
	Logger  *zap.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Service: svc, Logger: logger}
}

// ListReviews handles GET /api/reviews, returning approved reviews only.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Service.ListApproved()
	if err != nil {
		h.Logger.Error("Failed to fetch reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// CreateReview handles POST /api/reviews. New reviews start as pending and
// only appear publicly after moderation.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req review.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	r, err := h.Service.Submit(req)
	if err != nil {
		if errors.Is(err, review.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		h.Logger.Error("Failed to create review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviewId": r.ID})
}

// ModerateReview handles PATCH /api/reviews/:id (admin).
func (h *ReviewHandler) ModerateReview(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if err := h.Service.SetStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, review.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		default:
			h.Logger.Error("Failed to update review status", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
