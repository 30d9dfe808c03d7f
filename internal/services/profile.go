package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
)

// Error variables
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyQuery   = errors.New("search query must not be empty")
)

// ProfileReader defines read operations needed by the profile service.
type ProfileReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	SearchByUsername(ctx context.Context, fragment string) ([]models.UserDB, error)
}

// ProfileWriter defines write operations needed by the profile service.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserDB, error)
}

// ProfileService handles the current user's profile and username search.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

// GetProfile returns the user record for the given id.
func (svc *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// UpdateProfile applies a partial profile update and returns the updated
// record. Nil patch fields are left untouched.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserDB, error) {
	user, err := svc.writer.UpdateProfile(ctx, userID, patch)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// SearchByUsername returns users whose username contains the fragment,
// case-insensitively. Empty or whitespace-only fragments are rejected.
func (svc *ProfileService) SearchByUsername(ctx context.Context, fragment string) ([]models.UserDB, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, ErrEmptyQuery
	}

	users, err := svc.reader.SearchByUsername(ctx, fragment)
	if err != nil {
		logger.Log.Errorw("failed to search users", "error", err)
		return nil, err
	}

	return users, nil
}
