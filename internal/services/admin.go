package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/repositories"
)

// Error variables
var (
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrUserAlreadyExists = errors.New("user with this email or username already exists")
	ErrUserAlreadyAdmin  = errors.New("user is already an admin")
	ErrUserNotAdmin      = errors.New("user is not an admin")
)

// AdminUserReader defines read operations needed by role management.
type AdminUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*models.UserDB, error)
	ListAdmins(ctx context.Context) ([]models.UserDB, error)
}

// AdminUserWriter defines write operations needed by role management.
type AdminUserWriter interface {
	Save(ctx context.Context, user models.NewUser) (*models.UserDB, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role models.Role) (*models.UserDB, error)
}

// AdminService handles admin creation and role promotion/revocation.
type AdminService struct {
	reader      AdminUserReader
	writer      AdminUserWriter
	kafkaWriter KafkaWriter
}

// NewAdminService creates a new AdminService instance. kafkaWriter may be nil.
func NewAdminService(reader AdminUserReader, writer AdminUserWriter, kafkaWriter KafkaWriter) *AdminService {
	return &AdminService{reader: reader, writer: writer, kafkaWriter: kafkaWriter}
}

// CreateAdmin creates a new user with role ADMIN. The conflict fast path
// distinguishes an email collision from a username collision.
func (svc *AdminService) CreateAdmin(ctx context.Context, email, username, password, name string, bio, location *string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmailOrUsername(ctx, email, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "error", err)
		return nil, err
	}
	if existing != nil {
		if existing.Email == email {
			return nil, ErrEmailAlreadyExists
		}
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	admin, err := svc.writer.Save(ctx, models.NewUser{
		Email:        email,
		Username:     &username,
		PasswordHash: string(hashedPassword),
		Name:         &name,
		Bio:          bio,
		Location:     location,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save admin", "error", err)
		return nil, err
	}

	publishAudit(ctx, svc.kafkaWriter, models.AuditAdminCreated, admin.UserID.String(), admin.Email)

	return admin, nil
}

// AssignAdminRole promotes an existing user to ADMIN.
func (svc *AdminService) AssignAdminRole(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role == models.RoleAdmin {
		return nil, ErrUserAlreadyAdmin
	}

	updated, err := svc.writer.UpdateRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		logger.Log.Errorw("failed to update role", "user_id", userID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	publishAudit(ctx, svc.kafkaWriter, models.AuditAdminAssigned, updated.UserID.String(), updated.Email)

	return updated, nil
}

// RevokeAdminRole demotes an admin back to USER.
func (svc *AdminService) RevokeAdminRole(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role != models.RoleAdmin {
		return nil, ErrUserNotAdmin
	}

	updated, err := svc.writer.UpdateRole(ctx, userID, models.RoleUser)
	if err != nil {
		logger.Log.Errorw("failed to update role", "user_id", userID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	publishAudit(ctx, svc.kafkaWriter, models.AuditAdminRevoked, updated.UserID.String(), updated.Email)

	return updated, nil
}

// GetAllAdmins returns all admins, newest first.
func (svc *AdminService) GetAllAdmins(ctx context.Context) ([]models.UserDB, error) {
	admins, err := svc.reader.ListAdmins(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list admins", "error", err)
		return nil, err
	}

	return admins, nil
}
