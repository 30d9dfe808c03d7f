package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-travel-diary/internal/jwt"
	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/repositories"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// UserReader defines read-only user operations needed by authentication.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.NewUser) (*models.UserDB, error)
}

// Tokener issues tokens and decodes them without verification for
// blacklist bookkeeping.
type Tokener interface {
	Generate(ctx context.Context, userID uuid.UUID, email, role string) (string, error)
	DecodeUnverified(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BlacklistWriter records revoked tokens.
type BlacklistWriter interface {
	Save(ctx context.Context, token string, expiresAt time.Time) error
}

// BlacklistReader checks whether a token is revoked.
type BlacklistReader interface {
	Exists(ctx context.Context, token string) (bool, error)
}

// BlacklistCache is the Redis deny-list in front of the blacklist table.
type BlacklistCache interface {
	Save(ctx context.Context, token string, expiresAt time.Time) error
	Exists(ctx context.Context, token string) (bool, error)
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader          UserReader
	writer          UserWriter
	tokener         Tokener
	blacklistWriter BlacklistWriter
	blacklistReader BlacklistReader
	cache           BlacklistCache
	kafkaWriter     KafkaWriter
}

// NewAuthService creates a new AuthService instance. cache and kafkaWriter
// may be nil; the service then works against the database alone.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	tokener Tokener,
	blacklistWriter BlacklistWriter,
	blacklistReader BlacklistReader,
	cache BlacklistCache,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		reader:          reader,
		writer:          writer,
		tokener:         tokener,
		blacklistWriter: blacklistWriter,
		blacklistReader: blacklistReader,
		cache:           cache,
		kafkaWriter:     kafkaWriter,
	}
}

// Register creates a new user with role USER and returns the stored record.
func (svc *AuthService) Register(ctx context.Context, email, password, name string, bio, location *string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("registration rejected, email taken", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, models.NewUser{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         &name,
		Bio:          bio,
		Location:     location,
		Role:         models.RoleUser,
	})
	if err != nil {
		// The unique constraint is the real enforcement; a concurrent
		// registration slipping past the fast path lands here.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "error", err)
		return nil, err
	}

	publishAudit(ctx, svc.kafkaWriter, models.AuditUserRegistered, user.UserID.String(), user.Email)

	return user, nil
}

// Login authenticates a user and returns a signed token plus the user record.
// Unknown email and wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "error", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login rejected, unknown email")
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login rejected, password mismatch", "user_id", user.UserID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.tokener.Generate(ctx, user.UserID, user.Email, string(user.Role))
	if err != nil {
		logger.Log.Errorw("failed to generate token", "error", err)
		return "", nil, err
	}

	publishAudit(ctx, svc.kafkaWriter, models.AuditUserLogin, user.UserID.String(), user.Email)

	return token, user, nil
}

// Logout revokes the token by inserting it into the blacklist with its own
// expiry. The signature is deliberately not verified; only the expiry claim
// is needed, and it is recovered from the raw payload.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := svc.tokener.DecodeUnverified(ctx, token)
	if err != nil {
		logger.Log.Infow("logout rejected, undecodable token", "error", err)
		return ErrInvalidToken
	}
	if claims.ExpiresAt.IsZero() {
		logger.Log.Infow("logout rejected, token has no expiry")
		return ErrInvalidToken
	}

	if err := svc.blacklistWriter.Save(ctx, token, claims.ExpiresAt); err != nil {
		logger.Log.Errorw("failed to blacklist token", "error", err)
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.Save(ctx, token, claims.ExpiresAt); err != nil {
			logger.Log.Errorw("failed to cache blacklisted token", "error", err)
		}
	}

	publishAudit(ctx, svc.kafkaWriter, models.AuditUserLogout, claims.UserID.String(), claims.Email)

	return nil
}

// IsTokenBlacklisted reports whether the token has been revoked. The cache
// answers the hot path; a cache miss or a cache failure falls back to the
// blacklist table.
func (svc *AuthService) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if svc.cache != nil {
		revoked, err := svc.cache.Exists(ctx, token)
		if err == nil && revoked {
			return true, nil
		}
	}

	return svc.blacklistReader.Exists(ctx, token)
}
