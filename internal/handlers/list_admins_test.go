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
)

func TestListAdminsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admins := []models.UserDB{
		{UserID: uuid.New(), Email: "boss@test.com", Role: models.RoleAdmin},
		{UserID: uuid.New(), Email: "chief@test.com", Role: models.RoleAdmin},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockAdminLister(ctrl)
		mockSvc.EXPECT().GetAllAdmins(gomock.Any()).Return(admins, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/list", nil)
		rr := httptest.NewRecorder()

		NewListAdminsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.PublicUser
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "boss@test.com", resp[0].Email)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockAdminLister(ctrl)
		mockSvc.EXPECT().GetAllAdmins(gomock.Any()).Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/admin/list", nil)
		rr := httptest.NewRecorder()

		NewListAdminsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
