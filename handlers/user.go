package handlers

import (
	"errors"
	"net/http"

	"serenispa/middleware"
	"serenispa/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and profile endpoints.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// RegisterUser handles POST /api/users/register.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		default:
			h.Logger.Error("Failed to register user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": resp.User, "token": resp.Token})
}

// AuthenticateUser handles POST /api/users/login.
func (h *UserHandler) AuthenticateUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.Logger.Error("Failed to authenticate user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": resp.User, "token": resp.Token})
}

// GetProfile handles GET /api/users/me for the authenticated user.
func (h *UserHandler) GetProfile(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmail)

	profile, err := h.Service.GetProfile(email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.Logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/users/profile for the authenticated user.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmail)

	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdateProfile(email, req.Name, req.Phone); err != nil {
		switch {
		case errors.Is(err, user.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		case errors.Is(err, user.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			h.Logger.Error("Failed to update user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckAdmin handles POST /api/users/check-admin. The response mirrors what
// the admin pages expect: 401 without an email, 403 for non-admins.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"isAdmin": false})
		return
	}

	isAdmin, err := h.Service.IsAdmin(req.Email)
	if err != nil {
		h.Logger.Error("Failed to check admin status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"isAdmin": false})
		return
	}
	if !isAdmin {
		c.JSON(http.StatusForbidden, gin.H{"isAdmin": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": true})
}
