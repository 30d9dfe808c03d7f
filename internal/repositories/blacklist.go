package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
)

type BlacklistWriteRepository struct {
	db *sqlx.DB
}

func NewBlacklistWriteRepository(db *sqlx.DB) *BlacklistWriteRepository {
	return &BlacklistWriteRepository{db: db}
}

// Save records a revoked token. Revoking the same token twice is a no-op,
// so a repeated logout succeeds instead of hitting the unique constraint.
func (r *BlacklistWriteRepository) Save(ctx context.Context, token string, expiresAt time.Time) error {
	const query = `
		INSERT INTO blacklisted_tokens (token, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, token, expiresAt)

	logger.Log.Infow("blacklist query",
		"query", strings.Join(strings.Fields(query), " "),
		"expires_at", expiresAt,
		"error", err,
	)

	return err
}

type BlacklistReadRepository struct {
	db *sqlx.DB
}

func NewBlacklistReadRepository(db *sqlx.DB) *BlacklistReadRepository {
	return &BlacklistReadRepository{db: db}
}

// Exists reports whether the token is revoked. Rows whose expiry has passed
// are ignored; an expired token fails signature validation anyway, so stale
// rows never need to block anything.
func (r *BlacklistReadRepository) Exists(ctx context.Context, token string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM blacklisted_tokens
			WHERE token = $1 AND expires_at > NOW()
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, token)

	logger.Log.Infow("blacklist query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", exists,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return exists, nil
}
