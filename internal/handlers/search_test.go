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

	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/services"
)

func TestSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	armin := "Armin"
	users := []models.UserDB{
		{UserID: uuid.New(), Email: "armin@test.com", Username: &armin, Role: models.RoleUser},
	}

	tests := []struct {
		name          string
		query         string
		mockSetup     func(m *MockUserSearcher)
		expectedCode  int
		expectedErr   string
		expectedCount int
	}{
		{
			name:  "matches",
			query: "arm",
			mockSetup: func(m *MockUserSearcher) {
				m.EXPECT().SearchByUsername(gomock.Any(), "arm").Return(users, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 1,
		},
		{
			name:  "no matches",
			query: "zzz",
			mockSetup: func(m *MockUserSearcher) {
				m.EXPECT().SearchByUsername(gomock.Any(), "zzz").Return([]models.UserDB{}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 0,
		},
		{
			name:  "empty query",
			query: "",
			mockSetup: func(m *MockUserSearcher) {
				m.EXPECT().SearchByUsername(gomock.Any(), "").Return(nil, services.ErrEmptyQuery)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Username query parameter is required",
		},
		{
			name:  "internal server error",
			query: "arm",
			mockSetup: func(m *MockUserSearcher) {
				m.EXPECT().SearchByUsername(gomock.Any(), "arm").Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserSearcher(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewSearchHandler(mockSvc)
			req := httptest.NewRequest(http.MethodGet, "/users/search?username="+tt.query, nil)
			rr := httptest.NewRecorder()

			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp["error"])
				return
			}

			var resp []models.PublicUser
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp, tt.expectedCount)
		})
	}
}
