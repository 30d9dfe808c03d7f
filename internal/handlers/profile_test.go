package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-travel-diary/internal/jwt"
	"github.com/sbilibin2017/gw-travel-diary/internal/middlewares"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/services"
)

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Email: "alice@test.com", Role: "USER"}

	name := "Alice"
	user := &models.UserDB{
		UserID: userID,
		Email:  "alice@test.com",
		Name:   &name,
		Role:   models.RoleUser,
	}

	tests := []struct {
		name         string
		claims       *jwt.Claims
		mockSetup    func(m *MockProfileGetter)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "success",
			claims: claims,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().GetProfile(gomock.Any(), userID).Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "user not found",
			claims: claims,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "User not found",
		},
		{
			name:         "no identity in context",
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name:   "internal server error",
			claims: claims,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewProfileHandler(mockSvc)
			req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
			if tt.claims != nil {
				req = req.WithContext(middlewares.ContextWithClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp["error"])
				return
			}

			var resp models.PublicUser
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, userID, resp.UserID)
			assert.Equal(t, "alice@test.com", resp.Email)

			// the projection must never leak the hash
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}
