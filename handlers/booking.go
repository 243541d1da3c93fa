package handlers

import (
	"errors"
	"net/http"

	"serenispa/models"
	"serenispa/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// ListBookings handles GET /api/bookings with optional userEmail and date
// filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userEmail := c.Query("userEmail")
	date := c.Query("date")

	bookings, err := h.Service.List(userEmail, date)
	if err != nil {
		h.Logger.Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Time slot is already booked for this master"})
		default:
			h.Logger.Error("Failed to create booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookingId": b.ID, "booking": b})
}

// CancelBooking handles DELETE /api/bookings/:id. The record is kept and its
// status set to cancelled.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID is required"})
		return
	}

	if err := h.Service.Cancel(id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.Logger.Error("Failed to cancel booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
