package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suncrest-hotel-backend/internal/security"
)

func TestAdminOnly(t *testing.T) {
	tokenManager := security.NewTokenManager("test-secret-at-least-32-characters!!", 60)

	var reached bool
	protected := AdminOnly(tokenManager, func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin token passes", func(t *testing.T) {
		reached = false
		token, err := tokenManager.GenerateAccessToken(1, "desk@suncrest.example.com", []string{"admin"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/report", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})

	t.Run("missing header", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/api/admin/report", nil)
		rec := httptest.NewRecorder()
		protected(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("garbage token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/api/admin/report", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		protected(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("token without the admin role", func(t *testing.T) {
		reached = false
		token, err := tokenManager.GenerateAccessToken(2, "viewer@suncrest.example.com", []string{"viewer"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/report", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})
}
