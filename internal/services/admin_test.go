package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/services"
)

func TestAdminService_CreateAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAdminUserReader(ctrl)
	mockWriter := services.NewMockAdminUserWriter(ctrl)
	svc := services.NewAdminService(mockReader, mockWriter, nil)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "root@test.com", "root").
			Return(nil, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.NewUser) (*models.UserDB, error) {
				assert.Equal(t, models.RoleAdmin, user.Role)
				assert.Equal(t, "root", *user.Username)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
				return &models.UserDB{UserID: uuid.New(), Email: user.Email, Username: user.Username, Role: user.Role}, nil
			})

		admin, err := svc.CreateAdmin(ctx, "root@test.com", "root", "secret1", "Root", nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, admin.Role)
	})

	t.Run("email conflict", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "root@test.com", "other").
			Return(&models.UserDB{Email: "root@test.com"}, nil)

		_, err := svc.CreateAdmin(ctx, "root@test.com", "other", "secret1", "Root", nil, nil)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
	})

	t.Run("username conflict", func(t *testing.T) {
		username := "root"
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "new@test.com", "root").
			Return(&models.UserDB{Email: "root@test.com", Username: &username}, nil)

		_, err := svc.CreateAdmin(ctx, "new@test.com", "root", "secret1", "Root", nil, nil)
		assert.ErrorIs(t, err, services.ErrUsernameTaken)
	})
}

func TestAdminService_AssignAdminRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAdminUserReader(ctrl)
	mockWriter := services.NewMockAdminUserWriter(ctrl)
	svc := services.NewAdminService(mockReader, mockWriter, nil)
	ctx := context.Background()

	userID := uuid.New()

	t.Run("promotes a regular user", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Role: models.RoleUser}, nil)
		mockWriter.EXPECT().
			UpdateRole(gomock.Any(), userID, models.RoleAdmin).
			Return(&models.UserDB{UserID: userID, Role: models.RoleAdmin}, nil)

		user, err := svc.AssignAdminRole(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		_, err := svc.AssignAdminRole(ctx, userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("already admin", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Role: models.RoleAdmin}, nil)

		_, err := svc.AssignAdminRole(ctx, userID)
		assert.ErrorIs(t, err, services.ErrUserAlreadyAdmin)
	})
}

func TestAdminService_RevokeAdminRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAdminUserReader(ctrl)
	mockWriter := services.NewMockAdminUserWriter(ctrl)
	svc := services.NewAdminService(mockReader, mockWriter, nil)
	ctx := context.Background()

	userID := uuid.New()

	t.Run("demotes an admin", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Role: models.RoleAdmin}, nil)
		mockWriter.EXPECT().
			UpdateRole(gomock.Any(), userID, models.RoleUser).
			Return(&models.UserDB{UserID: userID, Role: models.RoleUser}, nil)

		user, err := svc.RevokeAdminRole(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleUser, user.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		_, err := svc.RevokeAdminRole(ctx, userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("not an admin", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Role: models.RoleUser}, nil)

		_, err := svc.RevokeAdminRole(ctx, userID)
		assert.ErrorIs(t, err, services.ErrUserNotAdmin)
	})
}

func TestAdminService_GetAllAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAdminUserReader(ctrl)
	mockWriter := services.NewMockAdminUserWriter(ctrl)
	svc := services.NewAdminService(mockReader, mockWriter, nil)
	ctx := context.Background()

	t.Run("returns admins", func(t *testing.T) {
		mockReader.EXPECT().
			ListAdmins(gomock.Any()).
			Return([]models.UserDB{{UserID: uuid.New(), Role: models.RoleAdmin}}, nil)

		admins, err := svc.GetAllAdmins(ctx)
		assert.NoError(t, err)
		assert.Len(t, admins, 1)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			ListAdmins(gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.GetAllAdmins(ctx)
		assert.EqualError(t, err, "db error")
	})
}
