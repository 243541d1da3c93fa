package middleware

import (
	"net/http"
	"strings"

	"serenispa/models"
	"serenispa/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

// authenticate validates the Bearer session token and stores the user's
// identity in the request context. On failure it aborts with 401 and returns
// false. With optional set, a request without a token passes unauthenticated.
// It never calls c.Next(); the calling middleware decides when the rest of
// the chain runs.
func authenticate(c *gin.Context, optional bool) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		if optional {
			return true
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return false
	}

	c.Set(CtxUserID, claims.Subject)
	c.Set(CtxUserEmail, claims.Email)
	c.Set(CtxUserRole, claims.Role)
	return true
}

// JWTAuthMiddleware validates the Bearer session token and stores the user's
// identity in the request context. With optional set, requests without a
// token pass through unauthenticated; handlers then decide what to expose.
func JWTAuthMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, optional) {
			return
		}
		c.Next()
	}
}

// JWTAuthAdminMiddleware validates the session token and requires the admin
// role. The handler chain only proceeds once both checks pass.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, false) {
			return
		}
		if c.GetString(CtxUserRole) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
