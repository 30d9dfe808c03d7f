package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/services"
)

func TestRevokeAdminHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	demoted := &models.UserDB{UserID: userID, Email: "bob@test.com", Role: models.RoleUser}

	tests := []struct {
		name         string
		pathID       string
		mockSetup    func(m *MockAdminRevoker)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "success",
			pathID: userID.String(),
			mockSetup: func(m *MockAdminRevoker) {
				m.EXPECT().RevokeAdminRole(gomock.Any(), userID).Return(demoted, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "user not found",
			pathID: userID.String(),
			mockSetup: func(m *MockAdminRevoker) {
				m.EXPECT().RevokeAdminRole(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "User not found",
		},
		{
			name:   "not an admin",
			pathID: userID.String(),
			mockSetup: func(m *MockAdminRevoker) {
				m.EXPECT().RevokeAdminRole(gomock.Any(), userID).Return(nil, services.ErrUserNotAdmin)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "User is not an admin",
		},
		{
			name:         "invalid user id",
			pathID:       "not-a-uuid",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid user id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAdminRevoker(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Delete("/admin/revoke/{userID}", NewRevokeAdminHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/admin/revoke/"+tt.pathID, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp["error"])
				return
			}

			var resp RevokeAdminResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Admin role revoked successfully", resp.Message)
			assert.Equal(t, models.RoleUser, resp.Admin.Role)
		})
	}
}
