package handlers

import (
	"errors"
	"net/http"

	"serenispa/middleware"
	"serenispa/models"
	"serenispa/services/event"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventHandler exposes the event and registration endpoints.
type EventHandler struct {
	Service event.EventService
	Logger  *zap.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc event.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{Service: svc, Logger: logger}
}

// ListEvents handles GET /api/events.
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.Service.List()
	if err != nil {
		h.Logger.Error("Failed to fetch events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /api/events/:id.
func (h *EventHandler) GetEvent(c *gin.Context) {
	ev, err := h.Service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		h.Logger.Error("Failed to fetch event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	c.JSON(http.StatusOK, ev)
}

// CreateEvent handles POST /api/events (admin).
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req event.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ev, err := h.Service.Create(req)
	if err != nil {
		if errors.Is(err, event.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		h.Logger.Error("Failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// UpdateEvent handles PUT /api/events/:id (admin). Only provided fields are
// changed.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req event.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ev, err := h.Service.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		h.Logger.Error("Failed to update event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, ev)
}

// DeleteEvent handles DELETE /api/events/:id (admin).
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, event.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		h.Logger.Error("Failed to delete event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type registrationRequest struct {
	EventID string `json:"eventId"`
}

// RegisterForEvent handles POST /api/events/register. The participant is the
// authenticated user.
func (h *EventHandler) RegisterForEvent(c *gin.Context) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID is required"})
		return
	}
	userID := c.GetString(middleware.CtxUserID)

	ev, err := h.Service.Register(req.EventID, userID)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, event.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "Already registered"})
		case errors.Is(err, event.ErrEventFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Event is full"})
		default:
			h.Logger.Error("Failed to register for event", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": ev})
}

// UnregisterFromEvent handles POST /api/events/unregister. Unregistering a
// non-participant succeeds silently.
func (h *EventHandler) UnregisterFromEvent(c *gin.Context) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID is required"})
		return
	}
	userID := c.GetString(middleware.CtxUserID)

	ev, err := h.Service.Unregister(req.EventID, userID)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		h.Logger.Error("Failed to unregister from event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": ev})
}
