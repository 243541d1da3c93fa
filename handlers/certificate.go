package handlers

import (
	"errors"
	"net/http"

	"serenispa/middleware"
	"serenispa/models"
	"serenispa/services/certificate"
	"serenispa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CertificateHandler exposes the gift certificate endpoints.
type CertificateHandler struct {
	Service certificate.CertificateService
	Logger  *zap.Logger
}

// NewCertificateHandler creates a CertificateHandler.
func NewCertificateHandler(svc certificate.CertificateService, logger *zap.Logger) *CertificateHandler {
	return &CertificateHandler{Service: svc, Logger: logger}
}

// CreateCertificate handles POST /api/certificates.
func (h *CertificateHandler) CreateCertificate(c *gin.Context) {
	var req certificate.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cert, err := h.Service.CreateOrder(req)
	if err != nil {
		if errors.Is(err, certificate.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Failed to save certificate order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save certificate order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "Certificate order saved successfully",
		"certificateNumber": cert.CertificateNumber,
	})
}

// GetCertificates handles GET /api/certificates. With a userEmail query it
// returns that buyer's certificates; without one it returns the admin
// statistics for the requested period and therefore requires the admin role.
func (h *CertificateHandler) GetCertificates(c *gin.Context) {
	if userEmail := c.Query("userEmail"); userEmail != "" {
		certs, err := h.Service.ListForBuyer(userEmail)
		if err != nil {
			h.Logger.Error("Failed to fetch certificates", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificates"})
			return
		}
		if certs == nil {
			certs = []models.Certificate{}
		}
		c.JSON(http.StatusOK, gin.H{"certificates": certs})
		return
	}

	if c.GetString(middleware.CtxUserRole) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	period := c.DefaultQuery("period", utils.PeriodAll)
	stats, err := h.Service.Stats(period)
	if err != nil {
		h.Logger.Error("Failed to calculate certificate statistics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificate statistics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "period": period})
}

// UpdateCertificateStatus handles PATCH /api/certificates/:id, advancing a
// certificate from pending to issued once printed.
func (h *CertificateHandler) UpdateCertificateStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Certificate ID and status are required"})
		return
	}

	if err := h.Service.UpdateStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, certificate.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, certificate.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		default:
			h.Logger.Error("Failed to update certificate status", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update certificate status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Certificate status updated successfully"})
}
