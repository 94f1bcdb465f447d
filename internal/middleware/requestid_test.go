package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dulcet/patisserie/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func Test_RequestID(t *testing.T) {
	t.Run("mints an ID when none provided", func(t *testing.T) {
		var seen string
		h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader), "response header matches the context value")
	})

	t.Run("trusts an inbound ID", func(t *testing.T) {
		var seen string
		h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set(middleware.RequestIDHeader, "lb-abc123")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, "lb-abc123", seen)
		assert.Equal(t, "lb-abc123", rec.Header().Get(middleware.RequestIDHeader))
	})
}

func Test_GetRequestID_MissingContext(t *testing.T) {
	assert.Empty(t, middleware.GetRequestID(httptest.NewRequest(http.MethodGet, "/cart", nil).Context()))
}
