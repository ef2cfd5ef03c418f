package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cafemeetup/config"
	"cafemeetup/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := tokenSvc.GenerateTokens(userID)
	require.NoError(t, err)

	mw := NewAuthMiddleware(tokenSvc)
	e := echo.New()

	next := func(c echo.Context) error {
		gotID, ok := UserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)

		return c.NoContent(http.StatusOK)
	}

	run := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := mw.Authenticate(next)(c)
		require.NoError(t, err)

		return rec
	}

	t.Run("ValidAccessToken", func(t *testing.T) {
		rec := run("Bearer " + accessToken)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := run("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authorization header is missing")
	})

	t.Run("NotBearer", func(t *testing.T) {
		rec := run("Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		rec := run("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		rec := run("Bearer " + refreshToken)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "not an access token")
	})
}

func TestUserID_MissingFromContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := UserID(c)
	assert.False(t, ok)
}
