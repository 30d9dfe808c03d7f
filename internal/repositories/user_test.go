package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-travel-diary/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func userRows(user models.UserDB) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "email", "username", "password_hash", "name",
		"bio", "location", "avatar_url", "role", "created_at", "updated_at",
	}).AddRow(
		user.UserID, user.Email, user.Username, user.PasswordHash, user.Name,
		user.Bio, user.Location, user.AvatarURL, user.Role, user.CreatedAt, user.UpdatedAt,
	)
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	stored := models.UserDB{
		UserID:       uuid.New(),
		Email:        "alice@test.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("alice@test.com").
			WillReturnRows(userRows(stored))

		user, err := repo.GetByEmail(ctx, "alice@test.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, stored.UserID, user.UserID)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("nobody@test.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "nobody@test.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("alice@test.com").
			WillReturnError(errors.New("connection refused"))

		user, err := repo.GetByEmail(ctx, "alice@test.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_SearchByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	username := "Armin"
	rows := userRows(models.UserDB{
		UserID:   uuid.New(),
		Email:    "armin@test.com",
		Username: &username,
		Role:     models.RoleUser,
	})

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username ILIKE").
		WithArgs("arm").
		WillReturnRows(rows)

	users, err := repo.SearchByUsername(ctx, "arm")
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "Armin", *users[0].Username)
}

func TestUserReadRepository_ListAdmins(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	rows := userRows(models.UserDB{
		UserID: uuid.New(),
		Email:  "admin@test.com",
		Role:   models.RoleAdmin,
	})

	mock.ExpectQuery("SELECT (.+) FROM users WHERE role").
		WithArgs(models.RoleAdmin).
		WillReturnRows(rows)

	admins, err := repo.ListAdmins(ctx)
	assert.NoError(t, err)
	assert.Len(t, admins, 1)
	assert.Equal(t, models.RoleAdmin, admins[0].Role)
}

func TestUserWriteRepository_Save_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	user, err := repo.Save(ctx, models.NewUser{
		Email:        "alice@test.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
	})
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.Nil(t, user)
}

func TestUserWriteRepository_UpdateRole_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("UPDATE users SET role").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.UpdateRole(ctx, uuid.New(), models.RoleAdmin)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserWriteRepository_UpdateProfile_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("UPDATE users").
		WillReturnError(sql.ErrNoRows)

	name := "Alice"
	user, err := repo.UpdateProfile(ctx, uuid.New(), models.ProfilePatch{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, user)
}
