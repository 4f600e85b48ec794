package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}

	t.Run("Recovers from panic with a 500 response", func(t *testing.T) {
		panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(errors.New("boom"))
		})

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		rr := httptest.NewRecorder()
		middlewares.ErrorHandler(panicking).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
		assert.Contains(t, rr.Body.String(), "Recovered from unhandled panic")
	})

	t.Run("Recovers from string panic", func(t *testing.T) {
		panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		rr := httptest.NewRecorder()
		middlewares.ErrorHandler(panicking).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Passes healthy handlers through", func(t *testing.T) {
		healthy := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		rr := httptest.NewRecorder()
		middlewares.ErrorHandler(healthy).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
