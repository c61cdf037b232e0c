package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r := gin.New()
	cfg := &config.Config{
		JWTSecret:              "access-secret",
		RefreshTokenCookieName: "refreshToken",
	}
	registerAuthRoutes(r, cfg, &portssvc.ServiceContainer{})
	return r
}

func TestAuthRoutePaths(t *testing.T) {
	r := newAuthTestRouter(t)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/v1/auth/register",
		"GET /api/v1/auth/verify-email",
		"POST /api/v1/auth/resend-verification",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/logout",
		"POST /api/v1/auth/refresh-token",
		"POST /api/v1/auth/forgot-password",
		"PUT /api/v1/auth/reset-password",
		"GET /api/v1/auth/profile",
		"POST /api/v1/auth/google",
		"GET /api/v1/auth/google/login",
		"GET /api/v1/auth/google/callback",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestRefreshTokenRoute_MissingCookie(t *testing.T) {
	r := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Refresh token missing")
}

func TestProfileRoute_RequiresAuthentication(t *testing.T) {
	r := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
