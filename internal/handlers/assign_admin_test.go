package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/services"
)

func TestAssignAdminHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	admin := &models.UserDB{UserID: userID, Email: "bob@test.com", Role: models.RoleAdmin}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockAdminAssigner)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"userId":"` + userID.String() + `"}`,
			mockSetup: func(m *MockAdminAssigner) {
				m.EXPECT().AssignAdminRole(gomock.Any(), userID).Return(admin, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "user not found",
			body: `{"userId":"` + userID.String() + `"}`,
			mockSetup: func(m *MockAdminAssigner) {
				m.EXPECT().AssignAdminRole(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "User not found",
		},
		{
			name: "already an admin",
			body: `{"userId":"` + userID.String() + `"}`,
			mockSetup: func(m *MockAdminAssigner) {
				m.EXPECT().AssignAdminRole(gomock.Any(), userID).Return(nil, services.ErrUserAlreadyAdmin)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "User is already an admin",
		},
		{
			name:         "invalid user id",
			body:         `{"userId":"not-a-uuid"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAdminAssigner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAssignAdminHandler(mockSvc)
			req := httptest.NewRequest(http.MethodPatch, "/admin/assign", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp["error"])
				return
			}

			var resp AssignAdminResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "User promoted to admin successfully", resp.Message)
			assert.Equal(t, models.RoleAdmin, resp.Admin.Role)
		})
	}
}
