package models

import "time"

// BlacklistedTokenDB represents a revoked token record.
// Rows are written on logout and consulted by the auth middleware.
type BlacklistedTokenDB struct {
	Token     string    `json:"token" db:"token"`           // Raw token string, primary key
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // Token expiry
}
