package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
)

// ErrUniqueViolation is returned when an insert or update hits a unique
// constraint (email or username already taken).
var ErrUniqueViolation = errors.New("unique constraint violation")

const userColumns = `user_id, email, username, password_hash, name, bio, location, avatar_url, role, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, hash included.
// Returns (nil, nil) when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or (nil, nil) when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmailOrUsername returns a user matching either field.
// Used as the conflict fast path before inserts so the caller can report
// which field collided. Returns (nil, nil) when neither matches.
func (r *UserReadRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 OR username = $2
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, username)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SearchByUsername returns users whose username contains the fragment,
// case-insensitively.
func (r *UserReadRepository) SearchByUsername(ctx context.Context, fragment string) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username ILIKE '%' || $1 || '%'
		ORDER BY username
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query, fragment)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fragment},
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// ListAdmins returns all users with role ADMIN, newest first.
func (r *UserReadRepository) ListAdmins(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = $1
		ORDER BY created_at DESC
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query, models.RoleAdmin)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored row.
// A duplicate email or username surfaces as ErrUniqueViolation; the unique
// constraints are the real enforcement, the read-side existence check is only
// a fast path for a friendlier error.
func (r *UserWriteRepository) Save(ctx context.Context, user models.NewUser) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, username, password_hash, name, bio, location, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + userColumns + `
	`
	args := []any{user.Email, user.Username, user.PasswordHash, user.Name, user.Bio, user.Location, user.Role}

	var saved models.UserDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Email, user.Username, user.Role},
		"error", err,
	)

	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	return &saved, nil
}

// UpdateProfile applies a partial update; nil patch fields keep their stored
// values. Returns (nil, nil) when the user does not exist.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET name       = COALESCE($2, name),
		    bio        = COALESCE($3, bio),
		    location   = COALESCE($4, location),
		    avatar_url = COALESCE($5, avatar_url),
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns + `
	`
	args := []any{userID, patch.Name, patch.Bio, patch.Location, patch.AvatarURL}

	var updated models.UserDB
	err := r.db.GetContext(ctx, &updated, query, args...)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// UpdateRole sets the user's role and returns the stored row.
// Returns (nil, nil) when the user does not exist.
func (r *UserWriteRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role models.Role) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET role = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns + `
	`

	var updated models.UserDB
	err := r.db.GetContext(ctx, &updated, query, userID, role)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, role},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrUniqueViolation
	}
	return err
}
