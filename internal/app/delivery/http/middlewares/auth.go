package middlewares

import (
	"context"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireActiveSession gates protected routes on the stored active
// identity. The identity itself is the credential; there are no tokens
// to verify.
func (m *Middlewares) RequireActiveSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.SessionRepository.Current(r.Context())
		if err != nil {
			m.Log.Error("Failed to read active session",
				zap.Error(err),
			)
			utils.BuildErrorResponse(w, err)
			return
		}
		if user == nil {
			utils.BuildErrorResponse(w, exceptions.ErrNoActiveSession(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACTIVE_USER_KEY, *user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
