package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dulcet/patisserie/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MaxBodySize(t *testing.T) {
	tests := []struct {
		name           string
		limit          int64
		body           string
		expectedStatus int
		explanation    string
	}{
		{
			name:           "body under limit passes",
			limit:          64,
			body:           `{"product_code":"GTO-CHOC"}`,
			expectedStatus: http.StatusOK,
			explanation:    "normal cart payloads flow through",
		},
		{
			name:           "body over limit rejected",
			limit:          8,
			body:           `{"product_code":"GTO-CHOC","message":"a very long message"}`,
			expectedStatus: http.StatusRequestEntityTooLarge,
			explanation:    "oversized declared length is rejected before the handler runs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerRan := false
			h := middleware.MaxBodySize(tt.limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerRan = true
				_, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code, tt.explanation)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, handlerRan)
		})
	}
}

func Test_Timeout(t *testing.T) {
	t.Run("fast handler completes", func(t *testing.T) {
		h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("slow handler answers 503", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		h := middleware.Timeout(10*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-release:
			}
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
