package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"serenispa/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(handler gin.HandlerFunc, mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw, handler)
	return r
}

func identityHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"userID": c.GetString(CtxUserID),
		"email":  c.GetString(CtxUserEmail),
		"role":   c.GetString(CtxUserRole),
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "anna@example.com", "user", time.Hour)
	require.NoError(t, err)

	r := newAuthRouter(identityHandler, JWTAuthMiddleware(false))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anna@example.com")
}

func TestJWTAuthMiddlewareMissingToken(t *testing.T) {
	r := newAuthRouter(identityHandler, JWTAuthMiddleware(false))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareInvalidToken(t *testing.T) {
	r := newAuthRouter(identityHandler, JWTAuthMiddleware(false))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareOptional(t *testing.T) {
	r := newAuthRouter(identityHandler, JWTAuthMiddleware(true))

	// No token: the request passes through unauthenticated.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":""`)
}

func TestJWTAuthAdminMiddleware(t *testing.T) {
	adminToken, err := utils.GenerateToken("admin-1", "admin@example.com", "admin", time.Hour)
	require.NoError(t, err)
	userToken, err := utils.GenerateToken("user-1", "anna@example.com", "user", time.Hour)
	require.NoError(t, err)

	// A recording handler: the gate must decide before the handler runs, not
	// rewrite the response afterwards.
	handlerRan := false
	recordingHandler := func(c *gin.Context) {
		handlerRan = true
		identityHandler(c)
	}
	r := newAuthRouter(recordingHandler, JWTAuthAdminMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)

	// A valid session without the admin role is forbidden, not unauthorized,
	// and the protected handler must never execute.
	handlerRan = false
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerRan)
	assert.NotContains(t, w.Body.String(), "anna@example.com")

	// No token at all is unauthorized; the handler must not run either.
	handlerRan = false
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}
