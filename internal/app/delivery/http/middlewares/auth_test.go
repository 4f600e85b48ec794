package middlewares

import (
	"context"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/core/auth"
	"medicore-service/internal/app/services/shared/kvstore"
	"medicore-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireActiveSession(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	sessionRepository := auth.NewSessionKvRepository(kv)

	middlewares := &Middlewares{
		Log:               zap.NewNop(),
		SessionRepository: sessionRepository,
		InternalConfig:    &config.InternalConfig{},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(constvars.CONTEXT_ACTIVE_USER_KEY).(models.User)
		assert.True(t, ok, "active user should be set in context")
		assert.Equal(t, "admin@hospital.com", user.Email)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("No session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)

		rr := httptest.NewRecorder()
		middlewares.RequireActiveSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 without a stored identity")
	})

	t.Run("Active session", func(t *testing.T) {
		err := sessionRepository.Save(context.Background(), models.User{
			ID:    "u-1",
			Email: "admin@hospital.com",
			Name:  "Admin",
		})
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)

		rr := httptest.NewRecorder()
		middlewares.RequireActiveSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Cleared session", func(t *testing.T) {
		assert.NoError(t, sessionRepository.Clear(context.Background()))

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)

		rr := httptest.NewRecorder()
		middlewares.RequireActiveSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
