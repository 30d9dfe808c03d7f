package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-travel-diary/internal/jwt"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name             string
		claims           *jwt.Claims
		expectedStatus   int
		expectedError    string
		expectNextCalled bool
	}{
		{
			name:           "no identity in context",
			claims:         nil,
			expectedStatus: http.StatusForbidden,
			expectedError:  "User not authenticated",
		},
		{
			name:           "regular user",
			claims:         &jwt.Claims{UserID: uuid.New(), Role: "USER"},
			expectedStatus: http.StatusForbidden,
			expectedError:  "Access denied. Admin privileges required.",
		},
		{
			name:           "unknown role",
			claims:         &jwt.Claims{UserID: uuid.New(), Role: "SUPERUSER"},
			expectedStatus: http.StatusForbidden,
			expectedError:  "Access denied. Admin privileges required.",
		},
		{
			name:             "admin",
			claims:           &jwt.Claims{UserID: uuid.New(), Role: "ADMIN"},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RequireAdmin()(next)

			req := httptest.NewRequest(http.MethodGet, "/admin/list", nil)
			if tt.claims != nil {
				req = req.WithContext(ContextWithClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedError != "" {
				var body map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}
