package facades

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
)

const blacklistKeyPrefix = "blacklist:"

// BlacklistCacheFacade keeps revoked tokens in Redis in front of the
// blacklist table. Keys carry a TTL equal to the token's remaining lifetime,
// so the cache forgets a token exactly when the token itself expires.
type BlacklistCacheFacade struct {
	client *redis.Client
}

// NewBlacklistCacheFacade creates a new facade with a Redis client.
func NewBlacklistCacheFacade(client *redis.Client) *BlacklistCacheFacade {
	return &BlacklistCacheFacade{client: client}
}

// Save marks a token as revoked until its expiry. Tokens that are already
// expired are not cached.
func (f *BlacklistCacheFacade) Save(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	key := blacklistKeyPrefix + token
	err := f.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("blacklist cache set",
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Exists reports whether the token is present in the cache.
func (f *BlacklistCacheFacade) Exists(ctx context.Context, token string) (bool, error) {
	key := blacklistKeyPrefix + token

	n, err := f.client.Exists(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("blacklist cache lookup failed", "error", err)
		return false, err
	}

	return n > 0, nil
}
